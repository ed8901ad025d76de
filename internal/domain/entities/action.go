package entities

// Action пункт главного меню
type Action int

const (
	ActionMerge Action = iota + 1
	ActionSplit
	ActionWatermark
	ActionCompress
	ActionRename
	ActionList
	ActionExit
)

// MenuActions порядок пунктов меню
var MenuActions = []Action{
	ActionMerge,
	ActionSplit,
	ActionWatermark,
	ActionCompress,
	ActionRename,
	ActionList,
	ActionExit,
}

func (a Action) String() string {
	switch a {
	case ActionMerge:
		return "Merge PDFs"
	case ActionSplit:
		return "Split PDF"
	case ActionWatermark:
		return "Add Watermark"
	case ActionCompress:
		return "Compress PDF"
	case ActionRename:
		return "Rename PDF"
	case ActionList:
		return "List PDFs"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Description подсказка для пункта меню в TUI
func (a Action) Description() string {
	switch a {
	case ActionMerge:
		return "Concatenate two or more PDFs in the chosen order"
	case ActionSplit:
		return "Split a PDF into single pages or page ranges"
	case ActionWatermark:
		return "Stamp the first page of a watermark PDF (or an image) on every page"
	case ActionCompress:
		return "Re-save a PDF through the optimizing writer"
	case ActionRename:
		return "Rename a PDF inside its directory"
	case ActionList:
		return "Show the PDFs in a directory"
	case ActionExit:
		return "Close the application"
	default:
		return ""
	}
}

// ParseAction разбирает номер пункта меню
func ParseAction(raw string) (Action, error) {
	n, err := ParseSelection(raw, len(MenuActions))
	if err != nil {
		return 0, ErrInvalidChoice
	}
	return MenuActions[n], nil
}
