package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"

	FieldAccountID  = "account_id"
	FieldLoanID     = "loan_id"
	FieldReminderID = "reminder_id"
	FieldBankName   = "bank_name"
	FieldCategory   = "category"
	FieldCurrency   = "currency"
	FieldAmount     = "amount"
	FieldDueDate    = "due_date"
	FieldBackend    = "backend"
	FieldQueue      = "queue"
	FieldExchange   = "exchange"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentAccounts = "accounts"
	ComponentLoans    = "loans"
	ComponentLedger   = "ledger"
	ComponentStorage  = "storage"
	ComponentAMQP     = "amqp"
	ComponentWorker   = "worker"
	ComponentCache    = "cache"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpPersist  = "persist"
	OpScan     = "scan"
	OpPublish  = "publish"
	OpValidate = "validate"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithMoney adds amount and currency fields
func (f LogFields) WithMoney(amount float64, currency string) LogFields {
	f[FieldAmount] = amount
	f[FieldCurrency] = currency
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
