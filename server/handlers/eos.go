package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eoscan/eosdb"
)

// EOSHandler обработчик просмотра справочника EOS
type EOSHandler struct {
	table *eosdb.Table
}

// NewEOSHandler создает новый обработчик справочника EOS
func NewEOSHandler(table *eosdb.Table) *EOSHandler {
	return &EOSHandler{table: table}
}

// EOSProductInfo продукт справочника и его версии
type EOSProductInfo struct {
	ProductKey string   `json:"product_key"`
	Versions   []string `json:"versions"`
}

// HandleListProducts возвращает содержимое справочника EOS
// @Summary Список продуктов справочника EOS
// @Description Возвращает канонические ключи продуктов и их версии в порядке обхода справочника
// @Tags eos
// @Produce json
// @Success 200 {object} map[string]interface{} "Продукты справочника"
// @Router /api/eos/products [get]
func (h *EOSHandler) HandleListProducts(c *gin.Context) {
	products := make([]EOSProductInfo, 0, h.table.Len())
	for _, productKey := range h.table.ProductKeys() {
		products = append(products, EOSProductInfo{
			ProductKey: productKey,
			Versions:   h.table.VersionKeys(productKey),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    len(products),
		"products": products,
	})
}
