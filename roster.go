package league

// PlayersSheet is the league roster.
const PlayersSheet = "Players"

var playersColumns = []string{"Player", "Active"}

var playerFields = []Field{
	{Name: "player", Aliases: []string{"player", "name"}, Required: true},
	{Name: "active", Aliases: []string{"active"}},
}

// UpsertPlayers adds any unseen name to the roster, Active by default.
// Match is by trimmed name: this is the only implicit identity-creation
// point in the system, and inconsistent spellings across events create
// duplicate players.
func UpsertPlayers(wb *Workbook, names []string) (added []string) {
	s := wb.Ensure(PlayersSheet, playersColumns...)
	cols, err := ResolveColumns(s, playerFields)
	if err != nil {
		return nil
	}
	known := make(map[string]bool, len(s.Rows))
	for _, r := range s.Rows {
		known[cellString(r[cols["player"]])] = true
	}
	for _, name := range names {
		if name == "" || known[name] {
			continue
		}
		known[name] = true
		s.Append(Row{"Player": name, "Active": true})
		added = append(added, name)
	}
	return added
}

// ActivePlayers returns the roster names currently marked active.
func ActivePlayers(wb *Workbook) []string {
	s := wb.Sheet(PlayersSheet)
	if s.Empty() {
		return nil
	}
	cols, err := ResolveColumns(s, playerFields)
	if err != nil {
		return nil
	}
	var names []string
	for _, r := range s.Rows {
		name := cellString(r[cols["player"]])
		if name == "" {
			continue
		}
		if !cols.Has("active") || cellBool(r[cols["active"]]) {
			names = append(names, name)
		}
	}
	return names
}
