package satsearch_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

var (
	reactionWheelsCategory = uuid.MustParse("fdc836a2-7a0e-5bce-ac48-8225ddb73a83")
	testSupplierID         = uuid.MustParse("6d706383-2b27-5942-9c55-385f4e425ff6")
)

func intPtr(v int) *int { return &v }

func TestSearchParameter_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		param *satsearch.SearchParameter
		want  string
	}{
		{
			name: "category supplier and product",
			param: &satsearch.SearchParameter{
				Categories: []satsearch.Category{{Thing: satsearch.Thing{UUID: reactionWheelsCategory}}},
				Suppliers:  []satsearch.Supplier{{Thing: satsearch.Thing{UUID: testSupplierID}}},
				Product:    "reaction wheel",
			},
			want: "category_uuids=fdc836a2-7a0e-5bce-ac48-8225ddb73a83" +
				"&supplier_uuids=6d706383-2b27-5942-9c55-385f4e425ff6" +
				"&product_name=reaction wheel",
		},
		{
			name:  "nil parameter",
			param: nil,
			want:  "",
		},
		{
			name:  "empty parameter",
			param: &satsearch.SearchParameter{},
			want:  "",
		},
		{
			name:  "whitespace product kept",
			param: &satsearch.SearchParameter{Product: "   "},
			want:  "product_name=   ",
		},
		{
			name: "page and page size follow product",
			param: &satsearch.SearchParameter{
				Product:  "star tracker",
				Page:     intPtr(2),
				PageSize: intPtr(25),
			},
			want: "product_name=star tracker&page=2&page_size=25",
		},
		{
			name: "repeated categories keep order",
			param: &satsearch.SearchParameter{
				Categories: []satsearch.Category{
					{Thing: satsearch.Thing{UUID: testSupplierID}},
					{Thing: satsearch.Thing{UUID: reactionWheelsCategory}},
				},
				PageSize: intPtr(10),
			},
			want: "category_uuids=6d706383-2b27-5942-9c55-385f4e425ff6" +
				"&category_uuids=fdc836a2-7a0e-5bce-ac48-8225ddb73a83" +
				"&page_size=10",
		},
		{
			name:  "page zero is still present",
			param: &satsearch.SearchParameter{Page: intPtr(0)},
			want:  "page=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.param.String())
			assert.Equal(t, tt.want == "", tt.param.IsEmpty())
		})
	}
}

func TestSearchParameter_Encode(t *testing.T) {
	t.Parallel()

	p := &satsearch.SearchParameter{
		Suppliers: []satsearch.Supplier{{Thing: satsearch.Thing{UUID: testSupplierID}}},
		Product:   "reaction wheel & more",
		Page:      intPtr(3),
	}

	assert.Equal(t,
		"supplier_uuids=6d706383-2b27-5942-9c55-385f4e425ff6&product_name=reaction+wheel+%26+more&page=3",
		p.Encode(),
	)
}

func TestSearchParameter_WithPage(t *testing.T) {
	t.Parallel()

	p := &satsearch.SearchParameter{Product: "antenna", Page: intPtr(1), PageSize: intPtr(5)}
	next := p.WithPage(4)

	assert.Equal(t, 1, *p.Page, "original is not modified")
	assert.Equal(t, "product_name=antenna&page=4&page_size=5", next.String())

	var nilParam *satsearch.SearchParameter
	assert.Equal(t, "page=2", nilParam.WithPage(2).String())
}
