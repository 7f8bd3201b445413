package services

import (
	"fmt"
	"strings"

	"rutero/internal/models/request_models"
	"rutero/pkg/utils"
)

// itinerarySchema is the exact response shape the model is told to emit.
// Field names are consumed verbatim by the parser and the mobile client.
const itinerarySchema = `{
  "metadata": {
    "titulo": "",
    "descripcion_general": "",
    "total_duracion": "",
    "total_distancia": "",
    "coordenada_start": "",
    "coordenada_end": ""
  },
  "lugares": {
    "<id>": {
      "nombre": "",
      "costo_promedio": "",
      "recomendaciones": "",
      "notas": "",
      "coordenadas": ""
    }
  }
}`

type PromptComposerInterface interface {
	// ComposeItineraryPrompt builds the full instruction text for the
	// generative model. Pure function: identical input yields identical
	// output. An empty place list is a contract violation.
	ComposeItineraryPrompt(places []request_models.PlaceCandidate, answerSummary string) (string, error)
}

type PromptComposer struct{}

func NewPromptComposer() PromptComposerInterface {
	return &PromptComposer{}
}

func (p *PromptComposer) ComposeItineraryPrompt(places []request_models.PlaceCandidate, answerSummary string) (string, error) {
	if len(places) == 0 {
		return "", utils.ErrEmptyPlaceList
	}

	var destinations strings.Builder
	for i, place := range places {
		fmt.Fprintf(&destinations, "%d. %s (%s)\n", i+1, place.Name, place.Description)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tenemos que visitar estos destinos:\n%s\n", destinations.String())
	fmt.Fprintf(&b, "Toma en cuenta estas respuestas para elegir el mejor orden: %s\n\n", answerSummary)
	b.WriteString("Devuelve solo un JSON valido, sin texto extra, con la estructura exacta:\n\n")
	b.WriteString(itinerarySchema)
	b.WriteString("\n\nreglas:\n")
	fmt.Fprintf(&b, "- El numero de entradas dentro de \"lugares\" es exactamente %d, igual a la cantidad de destinos.\n", len(places))
	b.WriteString("- Usa ids numericos consecutivos (1, 2, 3...) siguiendo la ruta mas eficiente.\n")
	b.WriteString("- Rellena cada campo con datos sintetizados segun la mejor ruta.\n")
	b.WriteString("- Solo puede responder en español.\n")
	b.WriteString("- La salida debe ser solo el JSON, nada mas.")

	return b.String(), nil
}
