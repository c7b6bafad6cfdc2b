package core

// KeyCode values match GLFW key codes so the platform layer can pass them through.
type KeyCode uint16

const (
	KEY_SPACE         KeyCode = 32
	KEY_A             KeyCode = 65
	KEY_C             KeyCode = 67
	KEY_D             KeyCode = 68
	KEY_E             KeyCode = 69
	KEY_O             KeyCode = 79
	KEY_Q             KeyCode = 81
	KEY_S             KeyCode = 83
	KEY_V             KeyCode = 86
	KEY_W             KeyCode = 87
	KEY_X             KeyCode = 88
	KEY_Y             KeyCode = 89
	KEY_Z             KeyCode = 90
	KEY_ESCAPE        KeyCode = 256
	KEY_ENTER         KeyCode = 257
	KEY_TAB           KeyCode = 258
	KEY_BACKSPACE     KeyCode = 259
	KEY_INSERT        KeyCode = 260
	KEY_DELETE        KeyCode = 261
	KEY_RIGHT         KeyCode = 262
	KEY_LEFT          KeyCode = 263
	KEY_DOWN          KeyCode = 264
	KEY_UP            KeyCode = 265
	KEY_F1            KeyCode = 290
	KEY_LEFT_SHIFT    KeyCode = 340
	KEY_LEFT_CONTROL  KeyCode = 341
	KEY_LEFT_ALT      KeyCode = 342
	KEY_RIGHT_SHIFT   KeyCode = 344
	KEY_RIGHT_CONTROL KeyCode = 345
	KEY_RIGHT_ALT     KeyCode = 346

	KEY_MAX_KEYS KeyCode = 512
)

type KeyboardState struct {
	Keys [KEY_MAX_KEYS]bool
}

type InputState struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
}

var inputState *InputState

func InputInitialize() error {
	inputState = &InputState{}
	LogInfo("Input subsystem initialized.")
	return nil
}

func InputShutdown() error {
	inputState = nil
	return nil
}

// InputUpdate copies current key state into previous; call once at the end of a frame.
func InputUpdate() {
	if inputState == nil {
		return
	}
	inputState.KeyboardPrevious = inputState.KeyboardCurrent
}

func InputIsKeyDown(key KeyCode) bool {
	if inputState == nil || key >= KEY_MAX_KEYS {
		return false
	}
	return inputState.KeyboardCurrent.Keys[key]
}

func InputWasKeyDown(key KeyCode) bool {
	if inputState == nil || key >= KEY_MAX_KEYS {
		return false
	}
	return inputState.KeyboardPrevious.Keys[key]
}

// InputIsKeyPressed is true only on the frame the key went down.
func InputIsKeyPressed(key KeyCode) bool {
	return InputIsKeyDown(key) && !InputWasKeyDown(key)
}

func InputIsCtrlDown() bool {
	return InputIsKeyDown(KEY_LEFT_CONTROL) || InputIsKeyDown(KEY_RIGHT_CONTROL)
}

func InputProcessKey(key KeyCode, pressed bool) {
	if inputState == nil || key >= KEY_MAX_KEYS {
		return
	}
	// Only handle this if the state actually changed.
	if inputState.KeyboardCurrent.Keys[key] == pressed {
		return
	}
	inputState.KeyboardCurrent.Keys[key] = pressed

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	EventFire(EventContext{
		Type: code,
		Data: &KeyEvent{KeyCode: key},
	})
}
