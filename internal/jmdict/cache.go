package jmdict

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/heartmarshall/myjapanese/internal/model"
)

// Разбор полного JMdict занимает заметное время, поэтому построенный
// индекс сохраняется в скомпилированный gob-кэш и при следующем старте
// читается из него.

// WriteCache сохраняет индекс в файл.
func (idx *Index) WriteCache(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("jmdict: create cache %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(idx.entries); err != nil {
		return fmt.Errorf("jmdict: encode cache %s: %w", path, err)
	}
	return nil
}

// ReadCache читает индекс из файла кэша.
func ReadCache(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("jmdict: open cache %s: %w", path, err)
	}
	defer f.Close()

	entries := make(map[string]model.DictionaryEntry)
	if err := gob.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("jmdict: decode cache %s: %w", path, err)
	}
	return &Index{entries: entries}, nil
}

// Load возвращает индекс из кэша, если он есть, иначе строит его из
// XML-лексикона и пытается сохранить кэш на будущее. Ошибка записи кэша
// не фатальна — индекс уже построен.
func Load(xmlPath, cachePath string) (*Index, error) {
	if cachePath != "" {
		if _, err := os.Stat(cachePath); err == nil {
			return ReadCache(cachePath)
		}
	}

	f, err := os.Open(xmlPath)
	if err != nil {
		return nil, fmt.Errorf("jmdict: open %s: %w", xmlPath, err)
	}
	defer f.Close()

	idx, err := Build(f, xmlPath)
	if err != nil {
		return nil, err
	}

	if cachePath != "" {
		if err := idx.WriteCache(cachePath); err != nil {
			os.Remove(cachePath)
		}
	}
	return idx, nil
}
