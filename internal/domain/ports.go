package domain

// ConfigLoader loads project configuration.
type ConfigLoader interface {
	Load(path string) (ProjectConfig, error)
}

// InvoiceSource reads invoices from an external file.
type InvoiceSource interface {
	LoadInvoices(path string) ([]Invoice, error)
}

// PlaySource reads the play catalog from an external file.
type PlaySource interface {
	LoadPlays(path string) (Plays, error)
}
