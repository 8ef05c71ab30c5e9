package shadertrack

// Overlay is a sparse override layer applied on top of a material's base
// values without mutating the material. The zero value is an empty overlay
// ready to use.
type Overlay struct {
	scalars  map[string]float64
	vectors  map[string]Vec4
	textures map[string]Texture
}

// NewOverlay creates an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// HasProperty implements PropertyBlock.
func (o *Overlay) HasProperty(name string) bool {
	if _, ok := o.scalars[name]; ok {
		return true
	}
	if _, ok := o.vectors[name]; ok {
		return true
	}
	_, ok := o.textures[name]
	return ok
}

// Float implements PropertyBlock.
func (o *Overlay) Float(name string) float64 { return o.scalars[name] }

// SetFloat implements PropertyBlock.
func (o *Overlay) SetFloat(name string, v float64) {
	if o.scalars == nil {
		o.scalars = make(map[string]float64)
	}
	o.scalars[name] = v
}

// Int implements PropertyBlock.
func (o *Overlay) Int(name string) int { return int(o.scalars[name]) }

// SetInt implements PropertyBlock.
func (o *Overlay) SetInt(name string, v int) { o.SetFloat(name, float64(v)) }

// Color implements PropertyBlock.
func (o *Overlay) Color(name string) Color { return o.vectors[name].Color() }

// SetColor implements PropertyBlock.
func (o *Overlay) SetColor(name string, c Color) { o.SetVector(name, c.Vec4()) }

// Vector implements PropertyBlock.
func (o *Overlay) Vector(name string) Vec4 { return o.vectors[name] }

// SetVector implements PropertyBlock.
func (o *Overlay) SetVector(name string, v Vec4) {
	if o.vectors == nil {
		o.vectors = make(map[string]Vec4)
	}
	o.vectors[name] = v
}

// Texture implements PropertyBlock.
func (o *Overlay) Texture(name string) Texture { return o.textures[name] }

// SetTexture implements PropertyBlock.
func (o *Overlay) SetTexture(name string, t Texture) {
	if o.textures == nil {
		o.textures = make(map[string]Texture)
	}
	o.textures[name] = t
}

// Len returns the number of properties the overlay overrides.
func (o *Overlay) Len() int {
	return len(o.scalars) + len(o.vectors) + len(o.textures)
}

// IsEmpty reports whether the overlay overrides nothing.
func (o *Overlay) IsEmpty() bool {
	return o.Len() == 0
}

// Clear removes every override.
func (o *Overlay) Clear() {
	clear(o.scalars)
	clear(o.vectors)
	clear(o.textures)
}

// Clone returns an independent copy of o. Clone of a nil overlay is an empty
// overlay.
func (o *Overlay) Clone() *Overlay {
	c := &Overlay{}
	if o == nil {
		return c
	}
	for k, v := range o.scalars {
		c.SetFloat(k, v)
	}
	for k, v := range o.vectors {
		c.SetVector(k, v)
	}
	for k, v := range o.textures {
		c.SetTexture(k, v)
	}
	return c
}
