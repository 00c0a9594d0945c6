package game

import (
	"time"

	"golang.org/x/exp/rand"

	"snake-gl/game/entity"
	"snake-gl/game/manager"
	"snake-gl/game/types"
)

// Outcome is the state of a round after a tick
type Outcome int

const (
	Running Outcome = iota
	Dead
	Won
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Dead:
		return "dead"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further tick will change the field
func (o Outcome) Terminal() bool {
	return o != Running
}

type Option func(*options)

type options struct {
	rng       manager.Rand
	start     types.Point
	direction types.Direction
	fruit     *types.Point
}

// WithSeed seeds the fruit generator. Zero picks a time based seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand replaces the fruit generator
func WithRand(rng manager.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithStart places the head and sets the initial direction
func WithStart(p types.Point, d types.Direction) Option {
	return func(o *options) {
		o.start = p
		o.direction = d
	}
}

// WithFruit places the first fruit instead of sampling it
func WithFruit(p types.Point) Option {
	return func(o *options) { o.fruit = &p }
}

// Field owns the whole simulation state of one round
type Field struct {
	Grid  types.Grid
	Snake *entity.Snake
	Fruit types.Point

	ticks        int
	outcome      Outcome
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
}

// NewField starts a round with the head at (0,0) heading right unless options say otherwise
func NewField(grid types.Grid, opts ...Option) *Field {
	o := options{direction: types.Right}
	WithSeed(0)(&o)
	for _, opt := range opts {
		opt(&o)
	}

	collisionMgr := manager.NewCollisionManager(grid)
	f := &Field{
		Grid:         grid,
		Snake:        entity.NewSnake(o.start, o.direction),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, o.rng, collisionMgr),
	}
	if o.fruit != nil {
		f.Fruit = *o.fruit
	} else {
		f.Fruit = f.foodMgr.RandomInRegion()
	}
	return f
}

// TryChangeDirection turns the snake unless d is the reverse of its heading
func (f *Field) TryChangeDirection(d types.Direction) bool {
	return f.Snake.SetDirection(d)
}

// HandleFruitCollision marks growth and moves the fruit when the head sits on it.
// Must run before AdvanceTick.
func (f *Field) HandleFruitCollision() bool {
	if !f.collisionMgr.IsFoodCollision(f.Snake.Head, f.Fruit) {
		return false
	}
	f.Snake.PendingGrowth = true
	if food, ok := f.foodMgr.GenerateFood(f.Snake); ok {
		f.Fruit = food
	}
	return true
}

// AdvanceTick moves the head one cell with wraparound and drags the body along
func (f *Field) AdvanceTick() {
	next := f.Grid.Wrap(f.Snake.Head.Add(f.Snake.Direction.ToPoint()))
	f.Snake.Move(next)
	f.ticks++
}

func (f *Field) CheckCollision() bool {
	return f.collisionMgr.CheckSelfCollision(f.Snake)
}

func (f *Field) CheckWin() bool {
	return f.collisionMgr.CheckWin(f.Snake)
}

// Step runs one full tick and returns the resulting outcome.
// Collision is checked before the win condition. Once the round is over Step does nothing.
func (f *Field) Step() Outcome {
	if f.outcome.Terminal() {
		return f.outcome
	}

	f.HandleFruitCollision()
	f.AdvanceTick()

	switch {
	case f.CheckCollision():
		f.outcome = Dead
	case f.CheckWin():
		f.outcome = Won
	}
	return f.outcome
}

func (f *Field) Outcome() Outcome {
	return f.outcome
}

// Ticks counts the ticks advanced so far
func (f *Field) Ticks() int {
	return f.ticks
}

// Head, Body and FruitPos expose the field to the renderer

func (f *Field) Head() types.Point {
	return f.Snake.Head
}

func (f *Field) Body() []types.Point {
	return f.Snake.Body
}

func (f *Field) FruitPos() types.Point {
	return f.Fruit
}
