package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// IntentKind tells the field controller what a key press asks for.
type IntentKind int

const (
	IntentNone    IntentKind = iota
	IntentEdit               // run the mask engine with Type and Data
	IntentHistory            // undo or redo
	IntentMove               // move the caret
	IntentSelectAll
	IntentPaste
	IntentCut
	IntentCopy
	IntentSubmit // Enter
	IntentCancel // Escape
)

// Motion is a caret movement.
type Motion int

const (
	MoveLeft Motion = iota
	MoveRight
	MoveHome
	MoveEnd
)

// Intent is a decoded key press.
type Intent struct {
	Kind    IntentKind
	Type    Type          // IntentEdit
	Data    string        // IntentEdit
	History HistoryAction // IntentHistory
	Motion  Motion        // IntentMove
	Extend  bool          // IntentMove with Shift held: grow the selection
}

// Keymap maps special keys to intents.
type Keymap map[tcell.Key]Intent

// ModKeymap maps keys pressed together with modifiers.
type ModKeymap map[tcell.ModMask]Keymap

// Processor translates tcell key events into field intents.
type Processor struct {
	bridge     Bridge
	keymap     Keymap
	modKeymap  ModKeymap
	altRunemap map[rune]Intent // Alt/Meta + rune
}

// NewProcessor creates a processor with the default field bindings.
func NewProcessor(bridge Bridge) *Processor {
	p := &Processor{
		bridge:     bridge,
		keymap:     make(Keymap),
		modKeymap:  make(ModKeymap),
		altRunemap: make(map[rune]Intent),
	}
	p.loadDefaultBindings()
	return p
}

func edit(t Type) Intent {
	return Intent{Kind: IntentEdit, Type: t}
}

func (p *Processor) loadDefaultBindings() {
	p.keymap[tcell.KeyBackspace] = edit(TypeDeleteContentBackward)
	p.keymap[tcell.KeyBackspace2] = edit(TypeDeleteContentBackward)
	p.keymap[tcell.KeyDelete] = edit(TypeDeleteContentForward)
	p.keymap[tcell.KeyCtrlW] = edit(TypeDeleteWordBackward)
	p.keymap[tcell.KeyCtrlU] = edit(TypeDeleteHardLineBackward)
	p.keymap[tcell.KeyCtrlK] = edit(TypeDeleteHardLineForward)
	p.keymap[tcell.KeyLeft] = Intent{Kind: IntentMove, Motion: MoveLeft}
	p.keymap[tcell.KeyRight] = Intent{Kind: IntentMove, Motion: MoveRight}
	p.keymap[tcell.KeyHome] = Intent{Kind: IntentMove, Motion: MoveHome}
	p.keymap[tcell.KeyEnd] = Intent{Kind: IntentMove, Motion: MoveEnd}
	p.keymap[tcell.KeyCtrlE] = Intent{Kind: IntentMove, Motion: MoveEnd}
	p.keymap[tcell.KeyCtrlA] = Intent{Kind: IntentSelectAll}
	p.keymap[tcell.KeyCtrlV] = Intent{Kind: IntentPaste}
	p.keymap[tcell.KeyCtrlX] = Intent{Kind: IntentCut}
	p.keymap[tcell.KeyCtrlC] = Intent{Kind: IntentCopy}
	p.keymap[tcell.KeyEnter] = Intent{Kind: IntentSubmit}
	p.keymap[tcell.KeyEscape] = Intent{Kind: IntentCancel}

	wordKeys := Keymap{
		tcell.KeyBackspace:  edit(TypeDeleteWordBackward),
		tcell.KeyBackspace2: edit(TypeDeleteWordBackward),
		tcell.KeyDelete:     edit(TypeDeleteWordForward),
	}
	p.modKeymap[tcell.ModCtrl] = wordKeys
	p.modKeymap[tcell.ModAlt] = wordKeys

	p.altRunemap['d'] = edit(TypeDeleteWordForward)
}

// Process decodes a key event. Undo and redo chords win over every
// other binding.
func (p *Processor) Process(ev *tcell.EventKey) Intent {
	if action := p.bridge.Detect(FromKey(ev)); action != HistoryNone {
		return Intent{Kind: IntentHistory, History: action}
	}

	key := ev.Key()
	mod := ev.Modifiers()

	if key == tcell.KeyRune {
		r := ev.Rune()
		if mod&(tcell.ModAlt|tcell.ModMeta) != 0 {
			if intent, ok := p.altRunemap[unicode.ToLower(r)]; ok {
				return intent
			}
			return Intent{}
		}
		if !unicode.IsPrint(r) {
			return Intent{}
		}
		return Intent{Kind: IntentEdit, Type: TypeInsertText, Data: string(r)}
	}

	// Ctrl+letter keys already imply the Ctrl modifier.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if keys, ok := p.modKeymap[mod&^tcell.ModShift]; ok && mod&^tcell.ModShift != tcell.ModNone {
		if intent, ok := keys[key]; ok {
			return intent
		}
	}

	if intent, ok := p.keymap[key]; ok {
		if intent.Kind == IntentMove {
			intent.Extend = mod&tcell.ModShift != 0
		}
		return intent
	}
	return Intent{}
}
