package resolve

import (
	"context"
	"time"

	"github.com/matzehuels/tilestyle/pkg/observability"
	"github.com/matzehuels/tilestyle/pkg/style"
)

// Defaults applied before any rule runs.
const (
	DefaultFill        = "rgba(200, 200, 200, 0.6)"
	DefaultStroke      = "rgba(100, 100, 100, 0.8)"
	DefaultStrokeWidth = 1.0
)

// Label appearance.
const (
	LabelFont      = "12px sans-serif"
	LabelHaloWidth = 2.0

	labelTextLight = "#ffffff"
	labelTextDark  = "#333333"
	labelHaloDark  = "#000000"
	labelHaloLight = "#ffffff"
)

// Layer tags with styling rules.
const (
	LayerWater     = "water"
	LayerLanduse   = "landuse"
	LayerBuildings = "buildings"
	LayerEarth     = "earth"
	LayerRoads     = "roads"
	LayerPlaces    = "places"
)

// Fallback colors used when the configuration leaves a color unset.
const (
	FallbackPark       = "#9cd3b4"
	FallbackIndustrial = "#d1dde1"
	FallbackHospital   = "#e4dad9"
	FallbackBuildings  = "rgba(204, 204, 204, 0.5)"
	FallbackEarth      = "#e2dfda"
	FallbackHighway    = "#ffffff"
	FallbackMajorRoad  = "#ffffff"
	FallbackMinorRoad  = "#ebebeb"
)

type colorRule struct {
	key      string
	fallback string
}

type roadRule struct {
	colorRule
	width float64
}

// roadStyle is a road rule with its color already resolved.
type roadStyle struct {
	color string
	width float64
}

var landuseRules = map[string]colorRule{
	"park":           {style.KeyLandusePark, FallbackPark},
	"nature_reserve": {style.KeyLandusePark, FallbackPark},
	"forest":         {style.KeyLandusePark, FallbackPark},
	"industrial":     {style.KeyLanduseIndustrial, FallbackIndustrial},
	"hospital":       {style.KeyLanduseHospital, FallbackHospital},
}

var roadRules = map[string]roadRule{
	"highway":    {colorRule{style.KeyRoadsHighway, FallbackHighway}, 5},
	"major_road": {colorRule{style.KeyRoadsMajor, FallbackMajorRoad}, 3},
	"minor_road": {colorRule{style.KeyRoadsMinor, FallbackMinorRoad}, 2},
}

var otherRoadRule = roadRule{colorRule{style.KeyRoadsMinor, FallbackMinorRoad}, 1}

// polygonLayers dispatches polygon features by layer tag.
var polygonLayers = map[string]func(*Resolver, Feature, *Style){
	LayerWater:     (*Resolver).styleWater,
	LayerLanduse:   (*Resolver).styleLanduse,
	LayerBuildings: (*Resolver).styleBuildings,
	LayerEarth:     (*Resolver).styleEarth,
}

// StyleFunc maps a feature to its style.
type StyleFunc func(Feature) Style

// Resolver computes feature styles for one style configuration.
type Resolver struct {
	cfg  style.Config
	dark bool

	water     string
	buildings string
	earth     string
	landuse   map[string]string
	roads     map[string]roadStyle
	otherRoad roadStyle
}

// New returns a Resolver for cfg. A nil cfg selects the default preset; an
// empty but non-nil cfg is used as-is and relies entirely on fallbacks.
// cfg is copied, so later edits to it do not affect the Resolver.
func New(cfg style.Config) *Resolver {
	if cfg == nil {
		cfg = style.Default()
	} else {
		cfg = cfg.Clone()
	}

	r := &Resolver{
		cfg:       cfg,
		dark:      cfg.Color(style.KeyBackground) == style.DarkBackground,
		water:     cfg.Color(style.KeyWater),
		buildings: cfg.ColorOr(style.KeyBuildings, FallbackBuildings),
		earth:     cfg.ColorOr(style.KeyBackground, FallbackEarth),
		landuse:   make(map[string]string, len(landuseRules)),
		roads:     make(map[string]roadStyle, len(roadRules)),
		otherRoad: resolveRoad(cfg, otherRoadRule),
	}
	for kind, rule := range landuseRules {
		r.landuse[kind] = cfg.ColorOr(rule.key, rule.fallback)
	}
	for kind, rule := range roadRules {
		r.roads[kind] = resolveRoad(cfg, rule)
	}
	return r
}

func resolveRoad(cfg style.Config, rule roadRule) roadStyle {
	return roadStyle{color: cfg.ColorOr(rule.key, rule.fallback), width: rule.width}
}

// NewStyleFunc returns the style function for cfg; see [New].
func NewStyleFunc(cfg style.Config) StyleFunc {
	return New(cfg).Resolve
}

// Config returns a copy of the configuration the Resolver was built from.
func (r *Resolver) Config() style.Config {
	return r.cfg.Clone()
}

// Func returns r.Resolve as a StyleFunc.
func (r *Resolver) Func() StyleFunc {
	return r.Resolve
}

// Resolve returns the style for f. It never fails: unknown geometry kinds,
// layers and kind tags keep the default style.
func (r *Resolver) Resolve(f Feature) Style {
	s := Style{
		Fill:        DefaultFill,
		Stroke:      DefaultStroke,
		StrokeWidth: DefaultStrokeWidth,
	}

	switch {
	case f.Geometry.IsPolygonal():
		if apply, ok := polygonLayers[f.Layer]; ok {
			apply(r, f, &s)
		}
	case f.Geometry.IsLinear():
		if f.Layer == LayerRoads {
			r.styleRoad(f, &s)
		}
	case f.Geometry == GeometryPoint:
		if f.Layer == LayerPlaces {
			r.stylePlace(f, &s)
		}
	}

	return s
}

// ResolveAll resolves each feature in order.
func (r *Resolver) ResolveAll(features []Feature) []Style {
	out := make([]Style, len(features))
	for i, f := range features {
		out[i] = r.Resolve(f)
	}
	return out
}

// cancelCheckEvery is how many features ResolveContext resolves between
// context checks.
const cancelCheckEvery = 1024

// ResolveContext resolves a batch like ResolveAll, reporting the batch to the
// registered style hooks. It returns ctx.Err() and no styles if ctx is
// cancelled before the batch completes.
func (r *Resolver) ResolveContext(ctx context.Context, features []Feature) ([]Style, error) {
	hooks := observability.Style()
	start := time.Now()
	hooks.OnResolveStart(ctx, len(features))

	out := make([]Style, len(features))
	for i, f := range features {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				hooks.OnResolveComplete(ctx, len(features), time.Since(start), err)
				return nil, err
			}
		}
		out[i] = r.Resolve(f)
	}
	hooks.OnResolveComplete(ctx, len(features), time.Since(start), nil)
	return out, nil
}

func (r *Resolver) styleWater(_ Feature, s *Style) {
	s.Fill = r.water
	s.Stroke = r.water
}

func (r *Resolver) styleLanduse(f Feature, s *Style) {
	if c, ok := r.landuse[f.Kind]; ok {
		s.Fill = c
	}
}

func (r *Resolver) styleBuildings(_ Feature, s *Style) {
	s.Fill = r.buildings
}

func (r *Resolver) styleEarth(_ Feature, s *Style) {
	s.Fill = r.earth
}

func (r *Resolver) styleRoad(f Feature, s *Style) {
	rule, ok := r.roads[f.Kind]
	if !ok {
		rule = r.otherRoad
	}
	s.Stroke = rule.color
	s.StrokeWidth = rule.width
}

func (r *Resolver) stylePlace(f Feature, s *Style) {
	if f.Name == "" {
		return
	}
	s.Label = &Label{
		Text:      f.Name,
		Font:      LabelFont,
		Fill:      r.textColor(),
		Halo:      r.haloColor(),
		HaloWidth: LabelHaloWidth,
	}
}

func (r *Resolver) textColor() string {
	if r.dark {
		return labelTextLight
	}
	return labelTextDark
}

func (r *Resolver) haloColor() string {
	if r.dark {
		return labelHaloDark
	}
	return labelHaloLight
}
