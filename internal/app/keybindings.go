package app

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/treykane/cli-carousel/internal/config"
)

// ---------------------------------------------------------------------------
// Action constants
// ---------------------------------------------------------------------------
//
// Each constant identifies a user-triggerable action. A key press is looked
// up in keyToAction and the resulting action is dispatched in handleKey.
// Users override the defaults through the "keybindings" map in the config
// file. Action names use underscores because the config loader treats dots
// as nesting.
// ---------------------------------------------------------------------------

const (
	// actionBack steps back by one item or page, per keyboardNavBy.
	actionBack = "nav_back"

	// actionForward steps forward by one item or page, per keyboardNavBy.
	actionForward = "nav_forward"

	// actionPrevPage moves to the previous page.
	actionPrevPage = "page_prev"

	// actionNextPage moves to the next page.
	actionNextPage = "page_next"

	// actionFirst slides to the first card.
	actionFirst = "jump_first"

	// actionLast slides to the last card.
	actionLast = "jump_last"

	// actionCenter centers the active card, or the whole strip when no card
	// is active.
	actionCenter = "center"

	// actionCycle pauses or resumes automatic cycling.
	actionCycle = "cycle_toggle"

	// actionMoveLeft moves the active card one place towards the start.
	actionMoveLeft = "card_move_left"

	// actionMoveRight moves the active card one place towards the end.
	actionMoveRight = "card_move_right"

	// actionHide takes the active card out of the strip until the next reload.
	actionHide = "card_hide"

	// actionReload re-reads the deck directory.
	actionReload = "deck_reload"

	// actionHelp toggles the key reference.
	actionHelp = "help_toggle"

	// actionQuit saves the position and exits.
	actionQuit = "app_quit"
)

// defaultActionKeys maps each action to its factory-default key bindings.
//
// Key strings use the Bubble Tea notation ("ctrl+", "shift+", "left",
// "pgup", single characters). The space bar is written "space".
var defaultActionKeys = map[string][]string{
	actionBack:      {"left", "h"},
	actionForward:   {"right", "l"},
	actionPrevPage:  {"[", "pgup"},
	actionNextPage:  {"]", "pgdown"},
	actionFirst:     {"home", "g"},
	actionLast:      {"end", "shift+g"},
	actionCenter:    {"c"},
	actionCycle:     {"space", "p"},
	actionMoveLeft:  {"<"},
	actionMoveRight: {">"},
	actionHide:      {"x"},
	actionReload:    {"r", "ctrl+r"},
	actionHelp:      {"?"},
	actionQuit:      {"q", "ctrl+c"},
}

// actionHelpText is the short description shown next to each action's keys.
var actionHelpText = map[string]string{
	actionBack:      "back",
	actionForward:   "forward",
	actionPrevPage:  "prev page",
	actionNextPage:  "next page",
	actionFirst:     "first",
	actionLast:      "last",
	actionCenter:    "center",
	actionCycle:     "pause/resume",
	actionMoveLeft:  "move card left",
	actionMoveRight: "move card right",
	actionHide:      "hide card",
	actionReload:    "reload deck",
	actionHelp:      "help",
	actionQuit:      "quit",
}

// helpColumns groups actions into the columns of the full help view.
var helpColumns = [][]string{
	{actionBack, actionForward, actionPrevPage, actionNextPage},
	{actionFirst, actionLast, actionCenter, actionCycle},
	{actionMoveLeft, actionMoveRight, actionHide, actionReload},
	{actionHelp, actionQuit},
}

// ---------------------------------------------------------------------------
// Keybinding initialization
// ---------------------------------------------------------------------------

// loadKeybindings initializes the key↔action maps from defaultActionKeys and
// the config's keybindings overrides, then rebuilds the reverse index used
// for dispatch.
//
// Unknown action names are logged and ignored. An override replaces the
// action's full default key set. When two actions claim the same key the
// first one in sorted action order keeps it.
func (m *Model) loadKeybindings(cfg config.Config) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}
	for action, keys := range cfg.Keybindings {
		m.applyKeybindingOverride(action, keys)
	}
	m.rebuildActionKeyIndex()
	m.keys = newKeyMap(m)
}

// applyKeybindingOverride replaces an action's keys. keys may hold several
// comma-separated keys.
func (m *Model) applyKeybindingOverride(action, keys string) {
	action = strings.TrimSpace(action)
	if action == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	var bound []string
	for _, k := range strings.Split(keys, ",") {
		if k = normalizeKeyString(k); k != "" && !slices.Contains(bound, k) {
			bound = append(bound, k)
		}
	}
	if len(bound) == 0 {
		return
	}
	m.keyForAction[action] = bound
}

// rebuildActionKeyIndex constructs keyToAction from keyForAction. Actions
// are visited in sorted order so conflicts resolve the same way every run.
func (m *Model) rebuildActionKeyIndex() {
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	m.keyToAction = map[string]string{}
	for _, action := range actions {
		for _, k := range m.keyForAction[action] {
			if k == "" {
				continue
			}
			if existing, ok := m.keyToAction[k]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", k, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[k] = action
		}
	}
}

// ---------------------------------------------------------------------------
// Key string normalization
// ---------------------------------------------------------------------------

// normalizeKeyString converts a key string into the canonical lowercase form
// used by the keybinding maps.
//
//	normalizeKeyString("Ctrl+R") → "ctrl+r"
//	normalizeKeyString("G")      → "shift+g"
//	normalizeKeyString(" ")      → "space"
func normalizeKeyString(k string) string {
	if k == " " {
		return "space"
	}
	k = strings.TrimSpace(k)
	if k == "" {
		return ""
	}
	// Bubble Tea reports shifted letters as uppercase runes.
	if len([]rune(k)) == 1 && strings.ToUpper(k) == k && strings.ToLower(k) != k {
		return "shift+" + strings.ToLower(k)
	}
	return strings.ToLower(k)
}

// actionForKey looks up the action bound to a key, or "".
func (m *Model) actionForKey(k string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(k)]
}

func (m *Model) actionKeyLabels(action string) []string {
	keys := m.keyForAction[action]
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		label := humanizeKeyLabel(k)
		if label == "" || slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (m *Model) primaryActionKey(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}

func humanizeKeyLabel(k string) string {
	normalized := normalizeKeyString(k)
	if normalized == "" {
		return ""
	}
	special := map[string]string{
		"up":     "↑",
		"down":   "↓",
		"left":   "←",
		"right":  "→",
		"enter":  "Enter",
		"esc":    "Esc",
		"tab":    "Tab",
		"home":   "Home",
		"end":    "End",
		"pgup":   "PgUp",
		"pgdown": "PgDn",
		"space":  "Space",
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		case "":
			// "+" itself splits into empty parts.
			parts[i] = "+"
		default:
			if label, ok := special[part]; ok {
				parts[i] = label
				continue
			}
			runes := []rune(part)
			if len(runes) == 1 && runes[0] >= 'a' && runes[0] <= 'z' {
				parts[i] = strings.ToUpper(part)
			} else {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
	}
	return strings.Join(parts, "+")
}

// ---------------------------------------------------------------------------
// Help key map
// ---------------------------------------------------------------------------

// keyMap exposes the current bindings to the bubbles help view.
type keyMap struct {
	bindings map[string]key.Binding
}

func newKeyMap(m *Model) keyMap {
	km := keyMap{bindings: map[string]key.Binding{}}
	for action, keys := range m.keyForAction {
		km.bindings[action] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(m.actionKeyLabels(action), "/"), actionHelpText[action]),
		)
	}
	return km
}

func (k keyMap) ShortHelp() []key.Binding {
	return k.pick(actionBack, actionForward, actionCycle, actionHelp, actionQuit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	out := make([][]key.Binding, 0, len(helpColumns))
	for _, column := range helpColumns {
		out = append(out, k.pick(column...))
	}
	return out
}

func (k keyMap) pick(actions ...string) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, action := range actions {
		if b, ok := k.bindings[action]; ok {
			out = append(out, b)
		}
	}
	return out
}
