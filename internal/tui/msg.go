package tui

import (
	"time"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTick is sent on every timer tick with the current time.
type MsgTick struct {
	Now time.Time
}

func (MsgTick) sealed() {}

// MsgStateLoaded is sent when the tracker state has been loaded or changed.
type MsgStateLoaded struct {
	Notice string // Optional message for the footer
	State  domain.TrackerState
}

func (MsgStateLoaded) sealed() {}

// MsgConfigLoaded is sent when configuration is loaded.
type MsgConfigLoaded struct {
	Config *domain.Config
}

func (MsgConfigLoaded) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgStateRefreshed is sent when a periodic reload of the store completes.
// Unlike MsgStateLoaded it leaves the footer alone.
type MsgStateRefreshed struct {
	State domain.TrackerState
}

func (MsgStateRefreshed) sealed() {}
