// Package query translates typed per-entity filter specs into a server-side
// execution plan plus client-side predicates.
//
// The asymmetry is deliberate and must be preserved: a non-empty search term
// takes precedence — the server call becomes a case-insensitive substring
// search across the entity's designated text fields and every discrete filter
// (estado, tipo, rango de fechas) is applied only client-side on the hits.
// Without a term, discrete filters push down as equality predicates. In both
// modes the same predicates re-apply client-side as defense-in-depth against
// stale or partial server results. Search and exact-match are never composed
// into a single server query.
package query

import "strings"

// Plan is the server-side strategy produced by a filter spec.
type Plan struct {
	// Termino, when non-empty, selects the search path over CamposBusqueda.
	Termino        string
	CamposBusqueda []string
	// Igualdades is only populated when Termino is empty.
	Igualdades map[string]any
}

// EsBusqueda reports whether this plan takes the full-text search path.
func (p Plan) EsBusqueda() bool { return p.Termino != "" }

// Predicado narrows one record client-side.
type Predicado[T any] func(T) bool

// Aplicar keeps the records satisfying every predicate (logical AND).
// An empty predicate list returns the input unchanged.
func Aplicar[T any](registros []T, preds []Predicado[T]) []T {
	if len(preds) == 0 {
		return registros
	}
	out := make([]T, 0, len(registros))
	for _, r := range registros {
		ok := true
		for _, p := range preds {
			if !p(r) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return out
}

// Contiene is the client-side mirror of the server's ILIKE %term% matching.
func Contiene(campo, termino string) bool {
	return strings.Contains(strings.ToLower(campo), strings.ToLower(termino))
}

// contieneAlguno matches the term against any of the given fields.
func contieneAlguno(termino string, campos ...string) bool {
	for _, c := range campos {
		if Contiene(c, termino) {
			return true
		}
	}
	return false
}
