package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"voynich/internal/types"
)

type MetadataFile struct {
	Version  string        `json:"version"`
	TextFile string        `json:"text_file"`
	Report   *types.Report `json:"report"`
}

// ExportToMultifile writes two files next to basePath:
//   - .txt : the decrypted text
//   - .json : the full report
func ExportToMultifile(r *types.Report, basePath string) (string, string, error) {
	// Remove ext if exists
	basePath = strings.TrimSuffix(basePath, filepath.Ext(basePath))

	txtPath := basePath + ".txt"
	jsonPath := basePath + ".json"

	text := ""
	if r.Substitution != nil {
		text = r.Substitution.DecryptedText
	}
	if err := os.WriteFile(txtPath, []byte(text+"\n"), 0o644); err != nil {
		return "", "", fmt.Errorf("error writing .txt file: %w", err)
	}

	metaFile, err := os.Create(jsonPath)
	if err != nil {
		return "", "", fmt.Errorf("error creating .json file: %w", err)
	}
	defer metaFile.Close()

	metadata := MetadataFile{
		Version:  "1.0",
		TextFile: filepath.Base(txtPath),
		Report:   r,
	}

	encoder := json.NewEncoder(metaFile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(metadata); err != nil {
		return "", "", fmt.Errorf("error writing JSON report: %w", err)
	}

	return txtPath, jsonPath, nil
}
