// Package preview runs an auto-tiling session: it generates a sample layer,
// resolves every configured tile set over it, and shows the result.
package preview

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"tilesmith/internal/autotile"
	"tilesmith/internal/config"
	"tilesmith/internal/gamemap"
	"tilesmith/internal/generate"
	"tilesmith/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Preview owns the registry, the engine and the current sample layer.
type Preview struct {
	cfg     *config.Config
	logger  *slog.Logger
	reg     *autotile.Registry
	rules   *autotile.RuleTable
	palette render.Palette

	seed   int64
	engine *autotile.Engine
	gmap   *gamemap.GameMap
	placed map[int]int // set id -> cells committed in the last build

	renderer *render.Renderer
	message  string
}

// New registers cfg's tile sets and builds the first layer from seed.
func New(cfg *config.Config, seed int64, logger *slog.Logger) (*Preview, error) {
	if logger == nil {
		logger = slog.Default()
	}
	reg := autotile.NewRegistry()
	if err := cfg.Apply(reg); err != nil {
		return nil, fmt.Errorf("register tile sets: %w", err)
	}
	assets, groups := cfg.Glyphs()
	p := &Preview{
		cfg:     cfg,
		logger:  logger,
		reg:     reg,
		rules:   autotile.DefaultRules(),
		palette: render.Palette{Assets: assets, Groups: groups},
	}
	p.Rebuild(seed)
	return p, nil
}

// Rebuild generates a fresh layer from seed and auto-tiles it.
func (p *Preview) Rebuild(seed int64) {
	p.seed = seed
	rng := rand.New(rand.NewSource(seed))
	p.gmap = generate.Generate(p.cfg.Generator(rand.New(rand.NewSource(rng.Int63()))))
	p.engine = autotile.NewEngine(p.reg, p.rules, rand.New(rand.NewSource(rng.Int63())), p.logger)
	p.Apply()
	p.logger.Info("layer built",
		"seed", seed,
		"width", p.gmap.Width,
		"height", p.gmap.Height,
		"rooms", len(p.gmap.Rooms),
	)
}

// Apply resolves every registered set over the whole layer and commits the
// results. Sets resolve in id order, each against the layer as painted.
func (p *Preview) Apply() {
	p.gmap.ClearAssets()
	p.placed = make(map[int]int)
	for _, id := range p.reg.IDs() {
		choices := p.engine.ApplyToArea(id, p.gmap.Bounds(), p.gmap.SameGroup(id))
		p.placed[id] = p.gmap.Commit(choices)
	}
}

// Map returns the current layer.
func (p *Preview) Map() *gamemap.GameMap { return p.gmap }

// Seed returns the seed of the current layer.
func (p *Preview) Seed() int64 { return p.seed }

// Placed returns how many cells of set id received an asset.
func (p *Preview) Placed(id int) int { return p.placed[id] }

// Status summarises the main set for the HUD.
func (p *Preview) Status() render.Status {
	id := p.cfg.Map.Set
	st := render.Status{
		SetName:   fmt.Sprintf("set %d", id),
		Algorithm: "-",
		Seed:      p.seed,
		Painted:   p.gmap.Count(id),
		Placed:    p.placed[id],
		Message:   p.message,
	}
	if set, ok := p.reg.GetSet(id); ok {
		st.SetName = set.Name
		st.Algorithm = set.Algorithm.String()
	}
	return st
}

// WriteText dumps the layer as plain text.
func (p *Preview) WriteText(w io.Writer) error {
	return render.WriteText(w, p.gmap, p.palette)
}

// Attach binds the preview to an initialised screen and centres the view.
func (p *Preview) Attach(screen tcell.Screen) {
	p.renderer = render.NewRenderer(screen, p.palette)
	p.recenter()
}

func (p *Preview) recenter() {
	p.renderer.CenterOn(p.gmap.Width/2, p.gmap.Height/2)
}

// Draw renders the current frame.
func (p *Preview) Draw() {
	p.renderer.DrawFrame(p.gmap, p.Status())
}

// Run draws and handles input until the user quits or the screen closes.
// The caller owns screen initialisation and Fini.
func (p *Preview) Run(screen tcell.Screen) {
	p.Attach(screen)
	for {
		p.Draw()
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			p.renderer.Resize()
			screen.Sync()
		case *tcell.EventKey:
			if p.HandleKey(ev) {
				return
			}
		}
	}
}

// HandleKey applies one key press. It reports whether the preview should quit.
func (p *Preview) HandleKey(ev *tcell.EventKey) bool {
	p.message = ""
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		p.renderer.Pan(0, -1)
	case tcell.KeyDown:
		p.renderer.Pan(0, 1)
	case tcell.KeyLeft:
		p.renderer.Pan(-1, 0)
	case tcell.KeyRight:
		p.renderer.Pan(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'r', 'R':
			p.Rebuild(p.seed + 1)
			p.recenter()
			p.message = "regenerated"
		case 'a', 'A':
			p.Apply()
			p.message = "re-applied"
		case 'c', 'C':
			p.recenter()
		}
	}
	return false
}
