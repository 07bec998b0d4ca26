package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceVersion = "1.0.0"
const versionUpdatedAt = "2024-11-02"

const homePage = `<!DOCTYPE html>
<html>
<head><title>Catalog API</title></head>
<body>
  <h1>Catalog API</h1>
  <p>A small JSON API over products and items.</p>
  <ul>
    <li><a href="/api/products">GET /api/products</a></li>
    <li><a href="/api/items">GET /api/items</a></li>
    <li><a href="/add-product-form">Add a product</a></li>
    <li><a href="/version">Version</a></li>
  </ul>
</body>
</html>`

const addProductForm = `<!DOCTYPE html>
<html>
<head><title>Add Product</title></head>
<body>
  <h1>Add Product</h1>
  <form id="product-form">
    <label>Name <input name="name" required></label><br>
    <label>Price <input name="price" required></label><br>
    <label>Category <input name="category" required></label><br>
    <button type="submit">Create</button>
  </form>
  <pre id="result"></pre>
  <script>
    document.getElementById('product-form').addEventListener('submit', async (e) => {
      e.preventDefault();
      const data = Object.fromEntries(new FormData(e.target));
      const res = await fetch('/api/products', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify(data)
      });
      document.getElementById('result').textContent = JSON.stringify(await res.json(), null, 2);
    });
  </script>
</body>
</html>`

// Home handles GET /.
func Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
}

// AddProductForm handles GET /add-product-form.
func AddProductForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(addProductForm))
}

// Version handles GET /version.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":   serviceVersion,
		"updatedAt": versionUpdatedAt,
	})
}
