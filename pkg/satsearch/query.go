package satsearch

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchParameter is a structured product query. Zero-valued fields are
// omitted from the query string.
type SearchParameter struct {
	Categories []Category
	Suppliers  []Supplier
	Product    string
	Page       *int
	PageSize   *int
}

type queryParam struct {
	key   string
	value string
}

// params returns the query parameters in wire order: category_uuids,
// supplier_uuids, product_name, page, page_size.
func (p *SearchParameter) params() []queryParam {
	if p == nil {
		return nil
	}

	var out []queryParam
	for i := range p.Categories {
		out = append(out, queryParam{"category_uuids", p.Categories[i].UUID.String()})
	}
	for i := range p.Suppliers {
		out = append(out, queryParam{"supplier_uuids", p.Suppliers[i].UUID.String()})
	}
	if p.Product != "" {
		out = append(out, queryParam{"product_name", p.Product})
	}
	if p.Page != nil {
		out = append(out, queryParam{"page", strconv.Itoa(*p.Page)})
	}
	if p.PageSize != nil {
		out = append(out, queryParam{"page_size", strconv.Itoa(*p.PageSize)})
	}
	return out
}

// String returns the query string with values left unescaped, e.g.
// "supplier_uuids=...&product_name=reaction wheel". Use Encode for requests.
func (p *SearchParameter) String() string {
	return p.join(func(s string) string { return s })
}

// Encode returns the query string in the same order as String with keys and
// values escaped for use in a URL.
func (p *SearchParameter) Encode() string {
	return p.join(url.QueryEscape)
}

// IsEmpty reports whether the parameter produces no query string.
func (p *SearchParameter) IsEmpty() bool {
	return len(p.params()) == 0
}

// WithPage returns a copy of p requesting the given page. The category and
// supplier slices are shared with p.
func (p *SearchParameter) WithPage(page int) *SearchParameter {
	var cp SearchParameter
	if p != nil {
		cp = *p
	}
	cp.Page = &page
	return &cp
}

func (p *SearchParameter) join(escape func(string) string) string {
	params := p.params()
	parts := make([]string, 0, len(params))
	for _, qp := range params {
		parts = append(parts, escape(qp.key)+"="+escape(qp.value))
	}
	return strings.Join(parts, "&")
}
