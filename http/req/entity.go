package req

import "net/http"

// An Entity is a decoded JSON body alongside the headers it came with.
type Entity[T any] struct {
	Header http.Header
	Body   T
}

// ParseEntity decodes the JSON body of pl into a T, as [Parser.ParseBody] does,
// and pairs it with the headers of pl.
func ParseEntity[T any](p *Parser, pl *Payload) (Entity[T], error) {
	e := Entity[T]{Header: pl.Header}
	if err := p.ParseBody(pl, &e.Body); err != nil {
		return Entity[T]{}, err
	}

	return e, nil
}
