package audit

const (
	defaultLimit = 50
	maxLimit     = 200
)

type Query struct {
	Action string
	Entity string
	Page   int
	Limit  int
}

// Normalize aplica os mesmos limites de paginação da listagem antiga.
func (q Query) Normalize() Query {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > maxLimit {
		q.Limit = defaultLimit
	}
	return q
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}
