package satsearch

import (
	"encoding/json"
	"fmt"
	"io"
)

// Deserializer turns SatSearch response bodies into typed records.
type Deserializer interface {
	DecodeSupplierResult(r io.Reader) (*SupplierResult, error)
	DecodeSupplier(r io.Reader) (*Supplier, error)
	DecodeCategories(r io.Reader) ([]Category, error)
	DecodeAttributeTypes(r io.Reader) ([]AttributeType, error)
	DecodeProductResult(r io.Reader) (*ProductResult, error)
	DecodeProduct(r io.Reader) (*Product, error)
}

// JSONDeserializer implements Deserializer with encoding/json. Unknown
// fields are ignored and absent fields keep their zero value.
type JSONDeserializer struct{}

// DecodeSupplierResult decodes a page of suppliers.
func (JSONDeserializer) DecodeSupplierResult(r io.Reader) (*SupplierResult, error) {
	var v SupplierResult
	if err := decodeJSON(r, &v, "supplier result"); err != nil {
		return nil, err
	}
	return &v, nil
}

// DecodeSupplier decodes a single supplier.
func (JSONDeserializer) DecodeSupplier(r io.Reader) (*Supplier, error) {
	var v Supplier
	if err := decodeJSON(r, &v, "supplier"); err != nil {
		return nil, err
	}
	return &v, nil
}

// DecodeCategories decodes a category array in document order.
func (JSONDeserializer) DecodeCategories(r io.Reader) ([]Category, error) {
	var v []Category
	if err := decodeJSON(r, &v, "categories"); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeAttributeTypes decodes an attribute type array in document order.
func (JSONDeserializer) DecodeAttributeTypes(r io.Reader) ([]AttributeType, error) {
	var v []AttributeType
	if err := decodeJSON(r, &v, "attribute types"); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeProductResult decodes a page of products.
func (JSONDeserializer) DecodeProductResult(r io.Reader) (*ProductResult, error) {
	var v ProductResult
	if err := decodeJSON(r, &v, "product result"); err != nil {
		return nil, err
	}
	return &v, nil
}

// DecodeProduct decodes a single product.
func (JSONDeserializer) DecodeProduct(r io.Reader) (*Product, error) {
	var v Product
	if err := decodeJSON(r, &v, "product"); err != nil {
		return nil, err
	}
	return &v, nil
}

func decodeJSON(r io.Reader, dst any, what string) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return fmt.Errorf("%w: parsing %s: %w", ErrDeserialization, what, err)
	}
	return nil
}
