package service

import (
	"github.com/MKhiriev/go-thread-chat/internal/adapter"
	"github.com/MKhiriev/go-thread-chat/internal/logger"
	"github.com/MKhiriev/go-thread-chat/internal/store"
	"github.com/MKhiriev/go-thread-chat/internal/utils"
)

// ClientServices groups every client service the TUI needs.
type ClientServices struct {
	AuthService   ClientAuthService
	ThreadService ClientThreadService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:   NewClientAuthService(localStore.SessionRepository, serverAdapter, logger),
		ThreadService: NewClientThreadService(serverAdapter, utils.NewUUIDGenerator(), logger),
	}
}
