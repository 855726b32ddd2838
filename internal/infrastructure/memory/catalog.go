package memory

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// catalogo formato de exportación del ERP de la tienda (ISO-8859-1 o UTF-8):
//
//	<catalogo>
//	  <producto sku="AP30001" nombre="Cámara ..." marca="Canon" categoria="Cámaras" precio="10499000" stock="12"/>
//	  <ubicacion id="1" zona="A" pasillo="1" estante="1" nivel="1" capacidad="40" ocupada="12"/>
//	  <existencia sku="AP30001" ubicacion="1" cantidad="12"/>
//	</catalogo>
type catalogo struct {
	Productos []struct {
		SKU       string `xml:"sku,attr"`
		Nombre    string `xml:"nombre,attr"`
		Marca     string `xml:"marca,attr"`
		Categoria string `xml:"categoria,attr"`
		Precio    string `xml:"precio,attr"`
		Stock     int    `xml:"stock,attr"`
	} `xml:"producto"`
	Ubicaciones []struct {
		ID        int64  `xml:"id,attr"`
		Zona      string `xml:"zona,attr"`
		Pasillo   int    `xml:"pasillo,attr"`
		Estante   int    `xml:"estante,attr"`
		Nivel     int    `xml:"nivel,attr"`
		Capacidad int    `xml:"capacidad,attr"`
		Ocupada   int    `xml:"ocupada,attr"`
	} `xml:"ubicacion"`
	Existencias []struct {
		SKU       string `xml:"sku,attr"`
		Ubicacion int64  `xml:"ubicacion,attr"`
		Cantidad  int    `xml:"cantidad,attr"`
	} `xml:"existencia"`
}

// CatalogStats cantidades importadas.
type CatalogStats struct {
	Products  int
	Locations int
	Stock     int
}

// ImportCatalogFile importa un catálogo XML desde disco.
func (s *Server) ImportCatalogFile(path string) (CatalogStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return CatalogStats{}, fmt.Errorf("abrir catálogo: %w", err)
	}
	defer f.Close()
	return s.ImportCatalog(f)
}

// ImportCatalog agrega productos, ubicaciones y existencias. Las filas incompletas se omiten.
func (s *Server) ImportCatalog(r io.Reader) (CatalogStats, error) {
	var c catalogo
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		switch strings.ToUpper(charset) {
		case "ISO-8859-1", "ISO8859-1", "LATIN1":
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		case "WINDOWS-1252", "CP1252":
			return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&c); err != nil {
		return CatalogStats{}, fmt.Errorf("decodificar catálogo: %w", err)
	}

	var st CatalogStats
	for _, p := range c.Productos {
		sku := strings.ToUpper(strings.TrimSpace(p.SKU))
		if sku == "" || strings.TrimSpace(p.Nombre) == "" {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(p.Precio))
		if err != nil {
			price = decimal.Zero
		}
		s.AddProduct(entity.Product{
			SKU: sku, Name: strings.TrimSpace(p.Nombre), Brand: strings.TrimSpace(p.Marca),
			Category: strings.TrimSpace(p.Categoria), Price: price, Stock: p.Stock, Active: true,
		})
		st.Products++
	}
	for _, u := range c.Ubicaciones {
		if u.ID <= 0 || strings.TrimSpace(u.Zona) == "" {
			continue
		}
		s.AddLocation(entity.Location{
			ID: u.ID, Zone: strings.ToUpper(strings.TrimSpace(u.Zona)), Aisle: u.Pasillo, Shelf: u.Estante, Level: u.Nivel,
			Capacity: u.Capacidad, Occupied: u.Ocupada, Active: true,
		})
		st.Locations++
	}
	for _, e := range c.Existencias {
		if strings.TrimSpace(e.SKU) == "" || e.Ubicacion <= 0 {
			continue
		}
		s.SetStock(strings.ToUpper(strings.TrimSpace(e.SKU)), e.Ubicacion, e.Cantidad)
		st.Stock++
	}
	return st, nil
}
