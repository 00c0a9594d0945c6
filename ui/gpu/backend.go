// Package gpu draws the field through raylib and OpenGL: every quad is an
// uploaded mesh and colour is a shader uniform set per draw.
package gpu

import (
	_ "embed"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"snake-gl/logging"
	"snake-gl/ui"
)

var (
	//go:embed shaders/quad.vs
	vertexShader string
	//go:embed shaders/quad.fs
	fragmentShader string
)

const colorUniform = "inColor"

type Config struct {
	Width  int
	Height int
	Title  string
}

type mesh struct {
	rl.Mesh
	// keeps the client side copies alive for as long as the mesh exists
	vertices []float32
	indices  []uint16
	loaded   bool
}

// Backend owns the window, the shader and every uploaded mesh.
type Backend struct {
	material rl.Material
	colorLoc int32
	meshes   []*mesh
	inFrame  bool
	logger   *slog.Logger
}

// New opens the window and compiles the shader. Only one Backend may exist at a time.
func New(cfg Config) (*Backend, error) {
	logger := logging.Component("gpu")
	bridgeTraceLog(logger)

	rl.SetConfigFlags(rl.FlagVsyncHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("window could not be created")
	}
	// Escape is a game key, not a window close request
	rl.SetExitKey(rl.KeyNull)
	// the two triangles of a quad are wound in opposite directions
	rl.DisableBackfaceCulling()

	shader := rl.LoadShaderFromMemory(vertexShader, fragmentShader)
	loc := rl.GetShaderLocation(shader, colorUniform)
	if !rl.IsShaderValid(shader) || shader.ID == rl.GetShaderIdDefault() || loc < 0 {
		rl.CloseWindow()
		return nil, errors.Errorf("quad shader failed to compile or link (uniform %s at %d)", colorUniform, loc)
	}

	material := rl.LoadMaterialDefault()
	material.Shader = shader

	logger.Info("window ready", "width", cfg.Width, "height", cfg.Height, "shader", shader.ID)
	return &Backend{
		material: material,
		colorLoc: loc,
		logger:   logger,
	}, nil
}

func (b *Backend) NewPrimitive(vertices []float32, indices []uint16) (ui.Primitive, error) {
	if len(vertices) == 0 || len(vertices)%2 != 0 {
		return 0, errors.Errorf("vertex data must be x, y pairs, got %d floats", len(vertices))
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return 0, errors.Errorf("index data must form triangles, got %d indices", len(indices))
	}

	m := &mesh{
		vertices: make([]float32, 0, len(vertices)/2*3),
		indices:  append([]uint16(nil), indices...),
	}
	for i := 0; i < len(vertices); i += 2 {
		m.vertices = append(m.vertices, vertices[i], vertices[i+1], 0)
	}
	m.VertexCount = int32(len(vertices) / 2)
	m.TriangleCount = int32(len(indices) / 3)
	m.Vertices = &m.vertices[0]
	m.Indices = &m.indices[0]

	rl.UploadMesh(&m.Mesh, false)
	if m.VaoID == 0 && m.VboID == nil {
		return 0, errors.New("mesh upload failed")
	}
	m.loaded = true

	b.meshes = append(b.meshes, m)
	id := ui.Primitive(len(b.meshes) - 1)
	b.logger.Debug("mesh uploaded", "primitive", id, "vao", m.VaoID, "vertices", m.VertexCount)
	return id, nil
}

func (b *Backend) ReleasePrimitive(p ui.Primitive) {
	if int(p) >= len(b.meshes) {
		return
	}
	m := b.meshes[p]
	if !m.loaded {
		return
	}
	rl.UnloadMesh(&m.Mesh)
	m.loaded = false
}

// Clear starts a new frame
func (b *Backend) Clear(c ui.Color) {
	if !b.inFrame {
		rl.BeginDrawing()
		b.inFrame = true
	}
	rl.ClearBackground(c.RGBA())
}

func (b *Backend) Draw(p ui.Primitive, c ui.Color) error {
	if !b.inFrame {
		return errors.New("draw outside of a frame")
	}
	if int(p) >= len(b.meshes) || !b.meshes[p].loaded {
		return errors.Errorf("unknown primitive %d", p)
	}
	rl.SetShaderValue(b.material.Shader, b.colorLoc, c.Vec4(), rl.ShaderUniformVec4)
	rl.DrawMesh(b.meshes[p].Mesh, b.material, rl.MatrixIdentity())
	return nil
}

// Present swaps buffers. raylib polls window events as part of it.
func (b *Backend) Present() error {
	if !b.inFrame {
		return errors.New("present without a frame")
	}
	rl.EndDrawing()
	b.inFrame = false
	return nil
}

func (b *Backend) Close() error {
	for i := range b.meshes {
		b.ReleasePrimitive(ui.Primitive(i))
	}
	b.meshes = nil
	// unloads the shader too
	rl.UnloadMaterial(b.material)
	rl.CloseWindow()
	b.logger.Info("window closed")
	return nil
}

var _ ui.Backend = (*Backend)(nil)
