package model

// AppState is the root of the in-memory domain tree.
type AppState struct {
	Checklists        []Checklist      `json:"checklists"`
	Groups            []ChecklistGroup `json:"groups"`
	ActiveChecklistID *string          `json:"activeChecklistId"`
	ActiveGroupID     *string          `json:"activeGroupId"`
	Settings          AppSettings      `json:"settings"`
	IsLoading         bool             `json:"isLoading"`
}

// Clone returns a deep copy of the state tree.
func (s AppState) Clone() AppState {
	out := s
	out.Checklists = make([]Checklist, len(s.Checklists))
	for i, c := range s.Checklists {
		out.Checklists[i] = c.Clone()
	}
	out.Groups = make([]ChecklistGroup, len(s.Groups))
	copy(out.Groups, s.Groups)
	if s.ActiveChecklistID != nil {
		out.ActiveChecklistID = StringPtr(*s.ActiveChecklistID)
	}
	if s.ActiveGroupID != nil {
		out.ActiveGroupID = StringPtr(*s.ActiveGroupID)
	}
	out.Settings = s.Settings.Clone()
	return out
}

// FindChecklist returns the index of the checklist with id, or -1.
func (s AppState) FindChecklist(id string) int {
	for i := range s.Checklists {
		if s.Checklists[i].ID == id {
			return i
		}
	}
	return -1
}

// FindGroup returns the index of the group with id, or -1.
func (s AppState) FindGroup(id string) int {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return i
		}
	}
	return -1
}

// GroupByName returns the first group named name.
func (s AppState) GroupByName(name string) (ChecklistGroup, bool) {
	for _, g := range s.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return ChecklistGroup{}, false
}

// ChecklistsInGroup returns the checklists whose GroupID equals groupID.
func (s AppState) ChecklistsInGroup(groupID string) []Checklist {
	var out []Checklist
	for _, c := range s.Checklists {
		if c.InGroup(groupID) {
			out = append(out, c)
		}
	}
	return out
}
