package dto

// DashboardResponse aggregates the counters shown on the admin landing page.
type DashboardResponse struct {
	TotalProductos     int64 `json:"total_productos"`
	ProductosActivos   int64 `json:"productos_activos"`
	ProductosStockBajo int64 `json:"productos_stock_bajo"`
	TotalCategorias    int64 `json:"total_categorias"`
	CategoriasActivas  int64 `json:"categorias_activas"`
	TotalMarcas        int64 `json:"total_marcas"`
	MarcasActivas      int64 `json:"marcas_activas"`
	TotalPedidos       int64 `json:"total_pedidos"`
	TotalClientes      int64 `json:"total_clientes"`
}
