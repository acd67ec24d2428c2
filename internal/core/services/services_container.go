package services

import (
	portsrepo "github.com/citruspartners/citrus_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/citruspartners/citrus_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo),
		Order:       NewOrderService(repos.OrderRepo),
		Partner:     NewPartnerService(repos.PartnerRepo),
		Journal:     NewJournalService(repos.JournalRepo),
		Reporting:   NewReportingService(repos.TransactionRepo, repos.OrderRepo, repos.PartnerRepo),
	}
}
