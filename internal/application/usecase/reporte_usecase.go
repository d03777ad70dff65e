package usecase

import (
	"github.com/jhoicas/gestion-productos-api/internal/domain/entity"
	"github.com/jhoicas/gestion-productos-api/internal/domain/repository"
)

// ReporteGenerator puerto para el renderizador del reporte tabular de
// productos. La implementación vive en infrastructure/pdf.
type ReporteGenerator interface {
	Generate(productos []*entity.Producto) ([]byte, error)
}

// ReporteUseCase arma el snapshot de todos los productos y lo renderiza a PDF.
type ReporteUseCase struct {
	repo      repository.ProductoRepository
	generator ReporteGenerator
}

// NewReporteUseCase construye el caso de uso del reporte.
func NewReporteUseCase(repo repository.ProductoRepository, generator ReporteGenerator) *ReporteUseCase {
	return &ReporteUseCase{repo: repo, generator: generator}
}

// GenerarPDF devuelve los bytes del reporte con todos los productos en el
// mismo orden del listado. Una lista vacía produce un PDF válido solo con
// la cabecera de la tabla.
func (uc *ReporteUseCase) GenerarPDF() ([]byte, error) {
	productos, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return uc.generator.Generate(productos)
}
