package programs

// ResolveLocationFilter selects the predicate combination for a structured
// search from the provided location fields. The branches are evaluated in
// strict priority order and the first match wins; this order is a behavioral
// contract, because it decides which predicate set is used when several
// fields are present (for example zip+city without state matches by city).
//
// Empty strings are treated as absent. State and zip match exactly, city is
// a case-insensitive substring match. The resolver is pure: the caller
// issues the corresponding store query.
func ResolveLocationFilter(zipCode, state, city string) LocationFilter {
	switch {
	case state != "" && city != "" && zipCode != "":
		return LocationFilter{
			Kind:   FilterStateCityZip,
			Clause: "WHERE pl.state = $1 AND pl.city ILIKE $2 AND pl.zip_code = $3",
			Args:   []any{state, "%" + city + "%", zipCode},
		}
	case state != "" && city != "":
		return LocationFilter{
			Kind:   FilterStateCity,
			Clause: "WHERE pl.state = $1 AND pl.city ILIKE $2",
			Args:   []any{state, "%" + city + "%"},
		}
	case state != "":
		return LocationFilter{
			Kind:   FilterState,
			Clause: "WHERE pl.state = $1",
			Args:   []any{state},
		}
	case city != "":
		return LocationFilter{
			Kind:   FilterCity,
			Clause: "WHERE pl.city ILIKE $1",
			Args:   []any{"%" + city + "%"},
		}
	case zipCode != "":
		return LocationFilter{
			Kind:   FilterZip,
			Clause: "WHERE pl.zip_code = $1",
			Args:   []any{zipCode},
		}
	default:
		return LocationFilter{Kind: FilterNone}
	}
}
