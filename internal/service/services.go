package service

import (
	"github.com/okulikov/campushub/internal/adapter"
	"github.com/okulikov/campushub/internal/logger"
	"github.com/okulikov/campushub/internal/store"
	"github.com/okulikov/campushub/internal/validators"
)

type ClientServices struct {
	Engine    SessionEngine
	SignInOTP OTPFlow
	SignupOTP OTPFlow
	Reset     PasswordResetFlow
	Gate      AuthGate
	Profile   ProfileService
	KeepAlive SessionKeepAlive
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, allowedDomains []string, log *logger.Logger) *ClientServices {
	validator := validators.NewAuthValidator(allowedDomains)
	engine := NewSessionEngine(serverAdapter, storages.SessionRepository, validator, log)

	return &ClientServices{
		Engine:    engine,
		SignInOTP: NewOTPFlow(serverAdapter, validator),
		SignupOTP: NewOTPFlow(serverAdapter, validator),
		Reset:     NewPasswordResetFlow(serverAdapter, validator),
		Gate:      NewAuthGate(engine, log),
		Profile:   NewProfileService(serverAdapter, engine, log),
		KeepAlive: NewSessionKeepAlive(engine),
	}
}
