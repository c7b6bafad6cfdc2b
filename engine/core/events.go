package core

import "sync"

// System internal event codes. Application should use codes beyond 255.
type EventCode int

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed. Data is *KeyEvent.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released. Data is *KeyEvent.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Resized/resolution changed from the OS. Data is *SystemEvent.
	EVENT_CODE_RESIZED EventCode = 0x08

	// A shader source file changed on disk. Data is *FileEvent.
	EVENT_CODE_SHADER_CHANGED EventCode = 0x10

	// The shader editor wrote a file. Data is *FileEvent.
	EVENT_CODE_SHADER_SAVED EventCode = 0x11

	MAX_EVENT_CODE EventCode = 0xFF
)

type KeyEvent struct {
	KeyCode KeyCode
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type FileEvent struct {
	Path string
}

type EventContext struct {
	Type EventCode
	Data interface{}
}

// FnOnEvent handles a fired event. Returning true marks the event handled
// and stops it from reaching later listeners.
type FnOnEvent func(context EventContext) bool

type eventSystemState struct {
	mu         sync.Mutex
	registered map[EventCode][]FnOnEvent
}

var eventState *eventSystemState

func EventSystemInitialize() bool {
	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{
		registered: make(map[EventCode][]FnOnEvent),
	}
	return true
}

func EventSystemShutdown() error {
	eventState = nil
	return nil
}

// EventRegister adds a listener for code. Listeners run in registration order.
func EventRegister(code EventCode, onEvent FnOnEvent) bool {
	if eventState == nil || onEvent == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	eventState.registered[code] = append(eventState.registered[code], onEvent)
	return true
}

// EventFire dispatches synchronously on the calling goroutine. It returns
// true when some listener handled the event.
func EventFire(context EventContext) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.Lock()
	listeners := append([]FnOnEvent(nil), eventState.registered[context.Type]...)
	eventState.mu.Unlock()

	for _, l := range listeners {
		if l(context) {
			return true
		}
	}
	return false
}
