package req

// A ParserOptFn configures a *Parser when constructing a new one.
type ParserOptFn func(*Parser)

// WithMaxBodySize sets the largest body, in bytes, the *Parser reads.
// A negative n reads bodies of any size.
func WithMaxBodySize(n int64) ParserOptFn {
	return func(p *Parser) {
		p.maxBodySize = n
	}
}

// WithStrictJSON fails [Parser.ParseBody] with [MalformedBody]
// when a JSON object has a key matching no field.
func WithStrictJSON() ParserOptFn {
	return func(p *Parser) {
		p.strictJSON = true
	}
}
