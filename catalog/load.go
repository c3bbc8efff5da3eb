package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"copsis/domain"

	"gopkg.in/yaml.v3"
)

type fileCatalog struct {
	Products []fileProduct `json:"products" yaml:"products"`
}

type fileProduct struct {
	ID      string      `json:"id" yaml:"id"`
	Name    string      `json:"name" yaml:"name"`
	Price   int64       `json:"price" yaml:"price"`
	Batches []fileBatch `json:"batches" yaml:"batches"`
}

type fileBatch struct {
	ID          string `json:"id" yaml:"id"`
	BatchNumber string `json:"batchNumber" yaml:"batchNumber"`
	ExpiryDate  string `json:"expiryDate" yaml:"expiryDate"`
	Stock       int    `json:"stock" yaml:"stock"`
}

// LoadFile reads a catalog from a JSON or YAML file, chosen by extension.
// Both a top-level product list and a {"products": [...]} document are accepted.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, errors.New("empty catalog file")
	}

	var doc fileCatalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(b, &doc)
	case ".json", "":
		err = decodeJSON(b, &doc)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	products, err := doc.toDomain()
	if err != nil {
		return nil, err
	}
	return New(products)
}

func decodeJSON(b []byte, doc *fileCatalog) error {
	if b[0] == '[' {
		return json.Unmarshal(b, &doc.Products)
	}
	return json.Unmarshal(b, doc)
}

func decodeYAML(b []byte, doc *fileCatalog) error {
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return err
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		return node.Content[0].Decode(&doc.Products)
	}
	return node.Decode(doc)
}

func (f fileCatalog) toDomain() ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.Products))
	for _, fp := range f.Products {
		p := domain.Product{ID: fp.ID, Name: fp.Name, Price: fp.Price}
		for _, fb := range fp.Batches {
			exp, err := domain.ParseDate(fb.ExpiryDate)
			if err != nil {
				return nil, fmt.Errorf("product %s batch %s: %w", fp.ID, fb.ID, err)
			}
			p.Batches = append(p.Batches, domain.Batch{
				ID:          fb.ID,
				BatchNumber: fb.BatchNumber,
				ExpiryDate:  exp,
				Stock:       fb.Stock,
			})
		}
		out = append(out, p)
	}
	return out, nil
}
