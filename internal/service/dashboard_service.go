package service

import (
	"context"
	"io"

	"petmarket/internal/dto"
	"petmarket/internal/infra"
	"petmarket/internal/repository"
)

// StockBajoUmbral marks products the dashboard flags for restocking.
const StockBajoUmbral = 10

// DashboardService aggregates the admin landing-page counters and produces
// the printable catalog export.
type DashboardService interface {
	Resumen(ctx context.Context) (*dto.DashboardResponse, error)
	ExportarCatalogoPDF(ctx context.Context, w io.Writer) error
}

type dashboardService struct {
	productos  repository.ProductoRepository
	categorias repository.CategoriaRepository
	marcas     repository.MarcaRepository
	pedidos    repository.PedidoRepository
	clientes   repository.ClienteRepository
}

func NewDashboardService(
	productos repository.ProductoRepository,
	categorias repository.CategoriaRepository,
	marcas repository.MarcaRepository,
	pedidos repository.PedidoRepository,
	clientes repository.ClienteRepository,
) DashboardService {
	return &dashboardService{
		productos:  productos,
		categorias: categorias,
		marcas:     marcas,
		pedidos:    pedidos,
		clientes:   clientes,
	}
}

func (s *dashboardService) Resumen(ctx context.Context) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{}
	var err error

	if resp.TotalProductos, err = s.productos.Contar(ctx); err != nil {
		return nil, err
	}
	if resp.ProductosActivos, err = s.productos.ContarActivos(ctx); err != nil {
		return nil, err
	}
	if resp.ProductosStockBajo, err = s.productos.ContarStockBajo(ctx, StockBajoUmbral); err != nil {
		return nil, err
	}
	if resp.TotalCategorias, err = s.categorias.Contar(ctx); err != nil {
		return nil, err
	}
	if resp.CategoriasActivas, err = s.categorias.ContarActivas(ctx); err != nil {
		return nil, err
	}
	if resp.TotalMarcas, err = s.marcas.Contar(ctx); err != nil {
		return nil, err
	}
	if resp.MarcasActivas, err = s.marcas.ContarActivas(ctx); err != nil {
		return nil, err
	}
	if resp.TotalPedidos, err = s.pedidos.Contar(ctx); err != nil {
		return nil, err
	}
	if resp.TotalClientes, err = s.clientes.Contar(ctx); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *dashboardService) ExportarCatalogoPDF(ctx context.Context, w io.Writer) error {
	productos, err := s.productos.Todos(ctx)
	if err != nil {
		return err
	}
	return infra.GenerateCatalogoPDF(productos, w)
}
