// Package catalog fournit la liste statique et typée des plats achetables.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"strings"

	"resto_web/internal/models"

	"github.com/pkg/errors"
)

//go:embed menu.json
var defaultMenu []byte

var ErrUnknownItem = errors.New("unknown catalog item")

type Catalog struct {
	items  []models.CatalogItem
	byName map[string]int
}

// Default charge le menu embarqué dans le binaire.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultMenu))
}

// LoadFile charge un menu JSON depuis le disque.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ouverture du menu %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Load décode un tableau JSON de plats. Les noms vides ou dupliqués et les prix
// négatifs sont refusés.
func Load(r io.Reader) (*Catalog, error) {
	var items []models.CatalogItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, errors.Wrap(err, "décodage du menu")
	}

	c := &Catalog{byName: make(map[string]int, len(items))}
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			return nil, errors.New("plat sans nom dans le menu")
		}
		if item.Price.IsNegative() {
			return nil, errors.Errorf("prix négatif pour %q", item.Name)
		}
		if _, dup := c.byName[item.Name]; dup {
			return nil, errors.Errorf("plat %q présent deux fois", item.Name)
		}
		c.byName[item.Name] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// Items retourne les plats dans l'ordre du menu.
func (c *Catalog) Items() []models.CatalogItem {
	return append([]models.CatalogItem(nil), c.items...)
}

func (c *Catalog) Lookup(name string) (models.CatalogItem, error) {
	i, ok := c.byName[name]
	if !ok {
		return models.CatalogItem{}, errors.Wrapf(ErrUnknownItem, "%q", name)
	}
	return c.items[i], nil
}
