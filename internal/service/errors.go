package service

import "errors"

var (
	ErrEmptyLogin       = errors.New("login is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrWrongPassword    = errors.New("wrong login or password")
	ErrLoginOnServer    = errors.New("error logging in on server")

	// ErrUnauthorized means the stored token was rejected; the user has to
	// log in again.
	ErrUnauthorized      = errors.New("session expired or invalid")
	ErrServerUnavailable = errors.New("server unavailable")
	ErrThreadNotFound    = errors.New("thread not found")

	ErrListThreads = errors.New("error fetching threads")
	ErrFetchThread = errors.New("error fetching thread")
	ErrSendMessage = errors.New("error sending message")
	ErrEmptyThread = errors.New("thread id is required")
	ErrEmptyText   = errors.New("message text is empty")
)
