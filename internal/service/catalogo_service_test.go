package service

import (
	"context"
	"testing"

	"petmarket/internal/apierror"
	"petmarket/internal/dto"
	"petmarket/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func nuevoCatalogoSvc() (CatalogoService, *stubProductoRepo, *stubCategoriaRepo, *stubMarcaRepo) {
	productos := newStubProductoRepo()
	categorias := newStubCategoriaRepo()
	marcas := newStubMarcaRepo()
	return NewCatalogoService(productos, categorias, marcas, &stubAlmacen{}), productos, categorias, marcas
}

func TestListarCategoriaDesconocidaDevuelveVacio(t *testing.T) {
	svc, productos, _, _ := nuevoCatalogoSvc()
	_ = productos.Create(context.Background(), &model.Producto{
		CategoriaID: uuid.New(), SKU: "X-1", Nombre: "Algo", Estado: model.EstadoActivo,
	})

	resp, err := svc.Listar(context.Background(), dto.ProductoFilter{CategoriaSlug: "no-existe"})
	assert.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.Equal(t, int64(0), resp.Total)
	assert.Equal(t, 1, resp.Page)
}

func TestListarResuelveCategoriaPorSlug(t *testing.T) {
	svc, productos, categorias, _ := nuevoCatalogoSvc()

	cat := &model.Categoria{Nombre: "Perros", Slug: "perros", Nivel: 1, Activa: true}
	_ = categorias.Crear(context.Background(), cat)
	_ = productos.Create(context.Background(), &model.Producto{
		CategoriaID: cat.ID, SKU: "P-1", Nombre: "Collar", Estado: model.EstadoActivo,
	})
	_ = productos.Create(context.Background(), &model.Producto{
		CategoriaID: uuid.New(), SKU: "P-2", Nombre: "Otro", Estado: model.EstadoActivo,
	})

	resp, err := svc.Listar(context.Background(), dto.ProductoFilter{CategoriaSlug: "perros"})
	assert.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "P-1", resp.Data[0].SKU)
}

func TestListarSoloProductosActivos(t *testing.T) {
	svc, productos, _, _ := nuevoCatalogoSvc()
	cat := uuid.New()
	_ = productos.Create(context.Background(), &model.Producto{
		CategoriaID: cat, SKU: "A-1", Nombre: "Activo", Estado: model.EstadoActivo,
	})
	_ = productos.Create(context.Background(), &model.Producto{
		CategoriaID: cat, SKU: "A-2", Nombre: "Inactivo", Estado: model.EstadoInactivo,
	})
	_ = productos.Create(context.Background(), &model.Producto{
		CategoriaID: cat, SKU: "A-3", Nombre: "Viejo", Estado: model.EstadoDescontinuado,
	})

	resp, err := svc.Listar(context.Background(), dto.ProductoFilter{})
	assert.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "A-1", resp.Data[0].SKU)
}

func TestDetalleProductoInactivoEs404(t *testing.T) {
	svc, productos, _, _ := nuevoCatalogoSvc()
	p := &model.Producto{
		CategoriaID: uuid.New(), SKU: "I-1", Nombre: "Retirado", Estado: model.EstadoInactivo,
	}
	_ = productos.Create(context.Background(), p)

	_, err := svc.Detalle(context.Background(), p.ID)
	assert.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestDetalleIncluyeRelacionadosDeLaMismaCategoria(t *testing.T) {
	svc, productos, _, _ := nuevoCatalogoSvc()
	cat := uuid.New()

	principal := &model.Producto{CategoriaID: cat, SKU: "R-0", Nombre: "Principal", Estado: model.EstadoActivo}
	_ = productos.Create(context.Background(), principal)
	for _, sku := range []string{"R-1", "R-2", "R-3", "R-4", "R-5"} {
		_ = productos.Create(context.Background(), &model.Producto{
			CategoriaID: cat, SKU: sku, Nombre: sku, Estado: model.EstadoActivo,
		})
	}
	// Otra categoría no aparece entre los relacionados.
	_ = productos.Create(context.Background(), &model.Producto{
		CategoriaID: uuid.New(), SKU: "Z-1", Nombre: "Ajeno", Estado: model.EstadoActivo,
	})

	resp, err := svc.Detalle(context.Background(), principal.ID)
	assert.NoError(t, err)
	assert.Equal(t, "R-0", resp.Producto.SKU)
	assert.Len(t, resp.Relacionados, 4)
	for _, r := range resp.Relacionados {
		assert.NotEqual(t, "R-0", r.SKU)
		assert.NotEqual(t, "Z-1", r.SKU)
	}
}

func TestInicioLimitaProductosYMarcas(t *testing.T) {
	svc, productos, _, marcas := nuevoCatalogoSvc()
	for i := 0; i < 12; i++ {
		_ = productos.Create(context.Background(), &model.Producto{
			CategoriaID: uuid.New(), SKU: uuid.NewString(), Nombre: "P", Estado: model.EstadoActivo,
		})
	}
	for i := 0; i < 8; i++ {
		_ = marcas.Crear(context.Background(), &model.Marca{
			Nombre: uuid.NewString(), Slug: uuid.NewString(), Activa: true,
		})
	}

	resp, err := svc.Inicio(context.Background())
	assert.NoError(t, err)
	assert.Len(t, resp.Productos, 8)
	assert.Len(t, resp.Marcas, 5)
}
