package ui

// FocusManager tracks and rotates keyboard focus across panels. The
// drawer snaps focus to the menu when it opens and back to the body
// when it closes; hosts may also rotate manually.
type FocusManager struct {
	Current  string   // ID of the currently focused panel
	Order    []string // rotation order
	OnChange func(from, to string)
}

// Next advances focus to the next panel in order and returns the new
// focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev advances focus to the previous panel in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(dir int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := 0
	for i, id := range f.Order {
		if id == f.Current {
			idx = i
			break
		}
	}
	from := f.Current
	idx = (idx + dir + len(f.Order)) % len(f.Order)
	f.Current = f.Order[idx]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}

// SetFocus sets focus to the given panel ID. Returns true if the ID
// exists in the rotation order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			from := f.Current
			f.Current = id
			if f.OnChange != nil && from != id {
				f.OnChange(from, id)
			}
			return true
		}
	}
	return false
}
