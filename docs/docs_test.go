package docs_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/wms-sync-agent/docs"
)

func TestReadDoc_RegistradoConLasRutasDeSync(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info  struct{ Title string }    `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "WMS Sync Agent API", doc.Info.Title)
	assert.Contains(t, doc.Paths["/v1/sync/conectividad"], "put")
	assert.Contains(t, doc.Paths["/v1/sync/rechazados/{id}"], "get")
	assert.Contains(t, doc.Paths["/v1/sync/rechazados/{id}/reencolar"], "post")
}

func TestSwaggerJSON_MismasRutasQueElRegistro(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)
	file, err := os.ReadFile("swagger.json")
	require.NoError(t, err)

	var registered, served struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &registered))
	require.NoError(t, json.Unmarshal(file, &served))
	assert.Equal(t, len(registered.Paths), len(served.Paths))
	for path := range registered.Paths {
		assert.Contains(t, served.Paths, path)
	}
}
