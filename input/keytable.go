package input

import "github.com/gdamore/tcell/v2"

// Intent is a one-shot host command, as opposed to held movement keys
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentPause
	IntentRestart
	IntentToggleMute
	IntentToggleAutoFire
)

// specialKeys maps tcell special keys to key identifiers
var specialKeys = map[tcell.Key]string{
	tcell.KeyUp:    KeyArrowUp,
	tcell.KeyDown:  KeyArrowDown,
	tcell.KeyLeft:  KeyArrowLeft,
	tcell.KeyRight: KeyArrowRight,
}

// intentRunes maps runes to host intents
var intentRunes = map[rune]Intent{
	'p': IntentPause,
	'P': IntentPause,
	'r': IntentRestart,
	'R': IntentRestart,
	'm': IntentToggleMute,
	'M': IntentToggleMute,
	'f': IntentToggleAutoFire,
	'F': IntentToggleAutoFire,
	'q': IntentQuit,
}

// Translate classifies a tcell key event into a held key identifier or an intent
func Translate(ev *tcell.EventKey) (key string, intent Intent) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyEscape:
		return "", IntentQuit
	case tcell.KeyRune:
		r := ev.Rune()
		if in, ok := intentRunes[r]; ok {
			return "", in
		}
		return string(r), IntentNone
	}
	if k, ok := specialKeys[ev.Key()]; ok {
		return k, IntentNone
	}
	return "", IntentNone
}
