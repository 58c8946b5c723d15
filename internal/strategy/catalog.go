package strategy

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v2"

	apperrors "optstrat/internal/errors"
	"optstrat/internal/models"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// Catalog is the read-only set of strategy definitions keyed by ID.
type Catalog struct {
	strategies map[string]models.StrategyDefinition
	ids        []string
}

type catalogFile struct {
	Strategies []models.StrategyDefinition `yaml:"strategies"`
}

// DefaultCatalog returns the built-in strategy catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(builtinCatalog)
}

// ParseCatalog decodes and checks a YAML strategy catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, apperrors.Wrap(err, "decoding strategy catalog")
	}

	c := &Catalog{strategies: make(map[string]models.StrategyDefinition, len(file.Strategies))}
	for _, def := range file.Strategies {
		if def.ID == "" {
			return nil, fmt.Errorf("strategy %q: missing id", def.Name)
		}
		if _, exists := c.strategies[def.ID]; exists {
			return nil, fmt.Errorf("strategy %s: duplicate id", def.ID)
		}
		if len(def.Legs) == 0 {
			return nil, fmt.Errorf("strategy %s: no legs", def.ID)
		}
		for i, tpl := range def.Legs {
			if msg := checkTemplate(tpl); msg != "" {
				return nil, fmt.Errorf("strategy %s: leg %d: %s", def.ID, i+1, msg)
			}
		}
		c.strategies[def.ID] = def
		c.ids = append(c.ids, def.ID)
	}
	sort.Strings(c.ids)

	return c, nil
}

// checkTemplate returns a description of what is wrong with a leg template,
// or "" if it is usable.
func checkTemplate(tpl models.LegTemplate) string {
	switch {
	case !tpl.Type.IsValid():
		return fmt.Sprintf("unknown instrument type %q", tpl.Type)
	case !tpl.Action.IsValid():
		return fmt.Sprintf("unknown action %q", tpl.Action)
	case tpl.Quantity <= 0:
		return "quantity must be positive"
	case tpl.Type == models.InstrumentStock && tpl.Action != models.ActionOwn:
		return fmt.Sprintf("unsupported action %s for stock", tpl.Action)
	case tpl.Type.IsOption() && tpl.Action == models.ActionOwn:
		return fmt.Sprintf("unsupported action own for %s", tpl.Type)
	}
	return ""
}

// Get returns the strategy with the given ID. The returned legs slice is a
// copy and may be modified freely.
func (c *Catalog) Get(id string) (models.StrategyDefinition, error) {
	def, ok := c.strategies[id]
	if !ok {
		return models.StrategyDefinition{}, apperrors.Wrapf(apperrors.ErrUnknownStrategy, "strategy %q", id)
	}
	def.Legs = append([]models.LegTemplate(nil), def.Legs...)
	return def, nil
}

// IDs returns all strategy IDs in sorted order.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.ids...)
}

// All returns every strategy, sorted by ID.
func (c *Catalog) All() []models.StrategyDefinition {
	defs := make([]models.StrategyDefinition, 0, len(c.ids))
	for _, id := range c.ids {
		def, _ := c.Get(id)
		defs = append(defs, def)
	}
	return defs
}
