// Package carrito implements the session-scoped shopping cart: a mapping
// from product id to a snapshot of {precio, cantidad, nombre, imagen}.
// The Carrito value is pure in-memory state; Store persists it per session.
package carrito

import (
	"petmarket/internal/model"
)

// CostoEnvioDefault is the flat shipping cost in CLP applied when the caller
// does not supply one.
const CostoEnvioDefault int64 = 2990

// Entrada is one cart line as stored in the session. Precio, Nombre and
// ImagenURL are snapshots taken when the product was first added; a later
// catalog change does not affect them.
type Entrada struct {
	Precio    int64  `json:"precio"`
	Cantidad  int    `json:"cantidad"`
	Nombre    string `json:"nombre"`
	ImagenURL string `json:"imagen_url"`
}

// Item is a cart line resolved against the catalog for display.
type Item struct {
	ProductoID string `json:"producto_id"`
	Nombre     string `json:"nombre"`
	Precio     int64  `json:"precio"`
	Cantidad   int    `json:"cantidad"`
	ImagenURL  string `json:"imagen_url"`
	Subtotal   int64  `json:"subtotal"`
}

// Carrito holds the cart entries of a single session. It is not safe for
// concurrent use: each entry is owned by exactly one session and mutated by
// one request at a time; simultaneous requests from the same session are
// last-write-wins at the store level.
type Carrito struct {
	entradas   map[string]Entrada
	modificado bool
}

// Nuevo returns an empty cart.
func Nuevo() *Carrito {
	return &Carrito{entradas: make(map[string]Entrada)}
}

func desdeEntradas(entradas map[string]Entrada) *Carrito {
	if entradas == nil {
		entradas = make(map[string]Entrada)
	}
	return &Carrito{entradas: entradas}
}

// Agregar adds cantidad units of producto. If the product is already in the
// cart only the quantity increases; otherwise a new entry snapshots the
// current precio, nombre and imagen. No stock check, no upper bound.
func (c *Carrito) Agregar(producto *model.Producto, cantidad int) {
	id := producto.ID.String()
	if e, ok := c.entradas[id]; ok {
		e.Cantidad += cantidad
		c.entradas[id] = e
	} else {
		c.entradas[id] = Entrada{
			Precio:    producto.Precio,
			Cantidad:  cantidad,
			Nombre:    producto.Nombre,
			ImagenURL: producto.ImagenURL,
		}
	}
	c.modificado = true
}

// Eliminar removes the entry for productoID; no-op when absent.
func (c *Carrito) Eliminar(productoID string) {
	if _, ok := c.entradas[productoID]; ok {
		delete(c.entradas, productoID)
		c.modificado = true
	}
}

// ActualizarCantidad overwrites the stored quantity. A non-positive cantidad
// behaves exactly like Eliminar.
func (c *Carrito) ActualizarCantidad(productoID string, cantidad int) {
	if _, ok := c.entradas[productoID]; !ok {
		return
	}
	if cantidad <= 0 {
		c.Eliminar(productoID)
		return
	}
	e := c.entradas[productoID]
	e.Cantidad = cantidad
	c.entradas[productoID] = e
	c.modificado = true
}

// IDs returns the product ids currently in the cart, for catalog resolution.
func (c *Carrito) IDs() []string {
	ids := make([]string, 0, len(c.entradas))
	for id := range c.entradas {
		ids = append(ids, id)
	}
	return ids
}

// Items resolves the stored entries against catalog rows and computes each
// line's subtotal from the session price. Entries written before quantity
// tracking existed (cantidad == 0 after decode) are repaired in place:
// cantidad defaults to 1 and the nombre/imagen snapshots are re-taken, and
// the cart is flagged modified so the store persists the repair.
func (c *Carrito) Items(productos []model.Producto) []Item {
	items := make([]Item, 0, len(c.entradas))
	for _, p := range productos {
		id := p.ID.String()
		e, ok := c.entradas[id]
		if !ok {
			continue
		}
		if e.Cantidad == 0 {
			e.Cantidad = 1
			e.Nombre = p.Nombre
			e.ImagenURL = p.ImagenURL
			c.entradas[id] = e
			c.modificado = true
		}
		items = append(items, Item{
			ProductoID: id,
			Nombre:     e.Nombre,
			Precio:     e.Precio,
			Cantidad:   e.Cantidad,
			ImagenURL:  e.ImagenURL,
			Subtotal:   e.Precio * int64(e.Cantidad),
		})
	}
	return items
}

// TotalProductos is the sum of quantities across all entries.
func (c *Carrito) TotalProductos() int {
	total := 0
	for _, e := range c.entradas {
		cantidad := e.Cantidad
		if cantidad == 0 {
			cantidad = 1
		}
		total += cantidad
	}
	return total
}

// Subtotal sums precio × cantidad over all entries, using the price stored
// in the session — never a live catalog read.
func (c *Carrito) Subtotal() int64 {
	var subtotal int64
	for _, e := range c.entradas {
		cantidad := e.Cantidad
		if cantidad == 0 {
			cantidad = 1
		}
		subtotal += e.Precio * int64(cantidad)
	}
	return subtotal
}

// Total is Subtotal plus the flat shipping cost.
func (c *Carrito) Total(costoEnvio int64) int64 {
	return c.Subtotal() + costoEnvio
}

// Limpiar empties the cart.
func (c *Carrito) Limpiar() {
	c.entradas = make(map[string]Entrada)
	c.modificado = true
}

// Vacio reports whether the cart has no entries.
func (c *Carrito) Vacio() bool { return len(c.entradas) == 0 }

// Modificado reports whether the cart changed since it was loaded and needs
// to be persisted.
func (c *Carrito) Modificado() bool { return c.modificado }
