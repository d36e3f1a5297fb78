package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldSource        = "source"
	FieldFormat        = "format"
	FieldPath          = "path"
	FieldRecordCount   = "record_count"
	FieldSkippedCount  = "skipped_count"
	FieldTransactionID = "transaction_id"
	FieldMerchant      = "merchant"
	FieldAmountCents   = "amount_cents"
	FieldYear          = "year"
	FieldMonth         = "month"
	FieldDuration      = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentDataset = "dataset"
	ComponentStorage = "storage"
	ComponentReport  = "report"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpLoad    = "load"
	OpParse   = "parse"
	OpQuery   = "query"
	OpRender  = "render"
	OpMigrate = "migrate"
	OpSeed    = "seed"
	OpStartup = "startup"
)
