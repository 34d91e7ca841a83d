package document

import "go.uber.org/fx"

// Module wires document parsing for dependency injection.
var Module = fx.Provide(newService)

func newService() *Service {
	return NewService(NewExcelExtractor(), NewPDFExtractor())
}
