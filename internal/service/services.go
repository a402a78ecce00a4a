package service

import (
	"github.com/Baconcat1912/encryptify/internal/crypto"
	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/internal/store"
)

// Services groups all engine services into a single value that can be
// passed to the front end.
type Services struct {
	Processor *ProcessorService
	Walker    *WalkerService
	History   *HistoryService
	Gate      *ConfirmationGate
	Batch     *BatchService
	Settings  *SettingsService
}

// NewServices wires the engine together: the processor around the supplied
// cipher executor, the walker around the processor, the history ledger
// around both, and the batch service around everything behind the
// confirmation gate.
func NewServices(storages *store.Storages, executor crypto.Executor, log *logger.Logger) *Services {
	processor := NewProcessorService(executor, log)
	walker := NewWalkerService(processor, log)
	history := NewHistoryService(storages.History, processor, walker, log)
	gate := NewConfirmationGate(log)

	return &Services{
		Processor: processor,
		Walker:    walker,
		History:   history,
		Gate:      gate,
		Batch:     NewBatchService(processor, walker, history, gate, log),
		Settings:  NewSettingsService(storages.Settings, log),
	}
}
