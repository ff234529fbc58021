package normalize

// Per-entity field schemas.  These are the single source of truth for which
// payload keys each route accepts and for the documented defaults: a fair
// without maxCapacity persists max_capacity=50 and current_capacity=0, a new
// registration starts as pending, a new fair as scheduled.

// FairFields covers POST /v1/fairs payloads.
var FairFields = []Field{
	{Name: "name"},
	{Name: "location"},
	{Name: "address"},
	{Name: "start_date"},
	{Name: "end_date"},
	{Name: "max_capacity", Default: float64(50)},
	{Name: "current_capacity", Default: float64(0)},
	{Name: "status", Default: "scheduled"},
	{Name: "product_categories", List: true},
	{Name: "requirements", List: true},
}

// ProducerFields covers POST /v1/producers payloads.
var ProducerFields = []Field{
	{Name: "user_id"},
	{Name: "name"},
	{Name: "document_type", Default: "cedula"},
	{Name: "document_number"},
	{Name: "phone"},
	{Name: "email"},
	{Name: "farm_name"},
	{Name: "farm_size"},
	{Name: "product_type", List: true},
}

// ProductFields covers POST and PUT /v1/products payloads.
var ProductFields = []Field{
	{Name: "producer_id"},
	{Name: "name"},
	{Name: "quantity"},
	{Name: "unit", Default: "unidad"},
	{Name: "unit_price"},
	{Name: "category"},
	{Name: "status", Default: "available"},
}

// RegistrationFields covers POST /v1/registrations payloads.
var RegistrationFields = []Field{
	{Name: "fair_id"},
	{Name: "producer_id"},
	{Name: "products_to_sell", List: true},
	{Name: "estimated_quantity"},
	{Name: "status", Default: "pending"},
}

// SaleFields covers POST /v1/sales payloads.
var SaleFields = []Field{
	{Name: "registration_id"},
	{Name: "product_id"},
	{Name: "product_name"},
	{Name: "quantity"},
	{Name: "unit_price"},
	{Name: "total_amount"},
	{Name: "payment_method", Default: "efectivo"},
	{Name: "sale_date"},
}

// ReportFields covers the non-file part of POST /v1/content-reports.
var ReportFields = []Field{
	{Name: "content_type", Default: "otro"},
	{Name: "description"},
	{Name: "location"},
}

// HelpFields covers the non-file part of POST /v1/technical-help.
var HelpFields = []Field{
	{Name: "subject"},
	{Name: "description"},
	{Name: "urgency", Default: "medium"},
}

// SurveyFields covers POST /v1/fair-surveys payloads.
var SurveyFields = []Field{
	{Name: "fair_id"},
	{Name: "satisfaction"},
	{Name: "organization"},
	{Name: "sales_volume"},
	{Name: "comments"},
	{Name: "would_recommend"},
}

// PostSaleFields covers POST /v1/post-sale payloads.
var PostSaleFields = []Field{
	{Name: "fair_id"},
	{Name: "total_sales"},
	{Name: "products_sold", List: true},
	{Name: "leftover_percent"},
	{Name: "comments"},
}

// UserFields covers admin POST and PUT /v1/users payloads.
var UserFields = []Field{
	{Name: "username"},
	{Name: "email"},
	{Name: "password"},
	{Name: "full_name"},
	{Name: "phone"},
	{Name: "role", Default: "user"},
	{Name: "status", Default: "active"},
}

// TranslationFields covers PUT /v1/translations payloads.
var TranslationFields = []Field{
	{Name: "language_code"},
	{Name: "key"},
	{Name: "value"},
}
