// Package container writes the smallest package a spreadsheet application
// will open: content types, two relationship parts, a workbook declaring one
// sheet, and that sheet with no data.
package container

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"wbfix/internal/logger"
)

// Part is one named document inside the package.
type Part struct {
	Name    string
	Content []byte
}

// Parts returns the five package parts in write order.
func Parts() ([]Part, error) {
	docs := []struct {
		name string
		doc  any
	}{
		{"[Content_Types].xml", contentTypes()},
		{"_rels/.rels", packageRels()},
		{"xl/workbook.xml", workbook()},
		{"xl/_rels/workbook.xml.rels", workbookRels()},
		{"xl/worksheets/sheet1.xml", worksheet()},
	}

	parts := make([]Part, 0, len(docs))
	for _, d := range docs {
		body, err := xml.Marshal(d.doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", d.name, err)
		}
		parts = append(parts, Part{
			Name:    d.name,
			Content: append([]byte(xml.Header), body...),
		})
	}
	return parts, nil
}

// Build creates or truncates path and writes the empty workbook package to it.
func Build(path string) error {
	parts, err := Parts()
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	zw := zip.NewWriter(file)
	for _, part := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: part.Name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", part.Name, err)
		}
		if _, err := w.Write(part.Content); err != nil {
			return fmt.Errorf("failed to write %s: %w", part.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}

	logger.Info("Built empty workbook container", "path", path, "parts", len(parts))
	return file.Close()
}
