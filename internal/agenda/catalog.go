package agenda

import (
	"context"
	"sort"
	"sync"

	"github.com/Leganyst/room-booking/internal/client"
	"github.com/Leganyst/room-booking/internal/dtos"
)

const msgCatalogFailed = "Erro ao carregar salas"

// Catalog holds the rooms loaded from GET /andares. Rooms carry the floor
// they were listed under.
type Catalog struct {
	api CatalogAPI

	mu      sync.RWMutex
	floors  []dtos.Floor
	rooms   []dtos.Room
	loading bool
	err     string
}

func NewCatalog(api CatalogAPI) *Catalog {
	return &Catalog{api: api}
}

// NewStaticCatalog serves a fixed list of floors without an API.
func NewStaticCatalog(floors []dtos.Floor) *Catalog {
	c := &Catalog{}
	c.set(floors)
	return c
}

// Load fetches the floors. On failure the previous data is kept and Err
// reports the problem.
func (c *Catalog) Load(ctx context.Context) error {
	if c.api == nil {
		return nil
	}

	c.mu.Lock()
	c.loading = true
	c.err = ""
	c.mu.Unlock()

	res, err := c.api.ListFloors(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.err = client.Message(err, msgCatalogFailed)
		return err
	}
	if !res.Success {
		c.err = res.Message
		if c.err == "" {
			c.err = msgCatalogFailed
		}
		return nil
	}
	c.setLocked(res.Data)
	return nil
}

func (c *Catalog) set(floors []dtos.Floor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(floors)
}

func (c *Catalog) setLocked(floors []dtos.Floor) {
	sorted := make([]dtos.Floor, len(floors))
	copy(sorted, floors)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Andar < sorted[j].Andar })

	rooms := make([]dtos.Room, 0)
	for _, f := range sorted {
		for _, r := range f.Salas {
			r.Andar = f.Andar
			rooms = append(rooms, r)
		}
	}
	c.floors = sorted
	c.rooms = rooms
}

func (c *Catalog) Floors() []dtos.Floor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]dtos.Floor, len(c.floors))
	copy(out, c.floors)
	return out
}

// Rooms returns every room, floor by floor.
func (c *Catalog) Rooms() []dtos.Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]dtos.Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

func (c *Catalog) ByFloor(andar int) []dtos.Room {
	return c.filter(func(r dtos.Room) bool { return r.Andar == andar })
}

// Available returns the Active rooms.
func (c *Catalog) Available() []dtos.Room {
	return c.filter(func(r dtos.Room) bool { return r.Status == StatusActive })
}

func (c *Catalog) ByID(id string) (dtos.Room, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return dtos.Room{}, false
}

func (c *Catalog) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Catalog) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

func (c *Catalog) filter(keep func(dtos.Room) bool) []dtos.Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]dtos.Room, 0)
	for _, r := range c.rooms {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Room status codes as sent by the API.
const (
	StatusActive      = 0
	StatusInactive    = 1
	StatusMaintenance = 2
)

// StatusLabel names a room status code.
func StatusLabel(status int) string {
	switch status {
	case StatusActive:
		return "Ativa"
	case StatusInactive:
		return "Inativa"
	case StatusMaintenance:
		return "Em Manutenção"
	default:
		return "Status desconhecido"
	}
}
