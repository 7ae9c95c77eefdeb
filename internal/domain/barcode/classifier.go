// Package barcode clasifica los códigos escaneados o tecleados por el
// operador. Clasificación pura y total: cualquier cadena obtiene un Kind.
//
// Prefijos reconocidos (sin distinguir mayúsculas):
//
//	SCAFFALE, SC  -> estantería
//	CASSETTA, CA  -> caja
//	AL            -> ambiguo: estantería de alérgenos o caja de alérgenos
//	^\d+.*-.*     -> muestra (también el fallback para todo lo demás)
//
// El prefijo AL se resuelve con el paso activo del flujo de archivado
// (ClassifyForStep); Classify a secas conserva el orden histórico de la
// aplicación original, que lo trataba como caja.
package barcode

import (
	"regexp"
	"strings"
)

// Kind es el tipo de elemento al que corresponde un código.
type Kind string

const (
	KindShelf  Kind = "shelf"
	KindBox    Kind = "box"
	KindSample Kind = "sample"
)

// Step es el paso activo del flujo de archivado, usado para desambiguar AL.
type Step string

const (
	StepShelf  Step = "shelf"
	StepBox    Step = "box"
	StepSample Step = "sample"
)

var samplePattern = regexp.MustCompile(`^\d+.*-.*`)

// Classify determina el tipo de elemento de un código. AL se clasifica como
// caja, igual que en el orden de comprobación original.
func Classify(code string) Kind {
	upper := strings.ToUpper(code)
	switch {
	case strings.HasPrefix(upper, "SCAFFALE"), strings.HasPrefix(upper, "SC"):
		return KindShelf
	case strings.HasPrefix(upper, "CASSETTA"), strings.HasPrefix(upper, "CA"), strings.HasPrefix(upper, "AL"):
		return KindBox
	case samplePattern.MatchString(code):
		return KindSample
	default:
		return KindSample
	}
}

// ClassifyForStep clasifica un código dejando que el paso activo del flujo
// reclame los códigos AL: en el paso estantería un AL es una estantería, en el
// paso caja es una caja. Para el resto de códigos delega en Classify.
func ClassifyForStep(code string, step Step) Kind {
	if strings.HasPrefix(strings.ToUpper(code), "AL") {
		switch step {
		case StepShelf:
			return KindShelf
		case StepBox:
			return KindBox
		}
	}
	return Classify(code)
}

// SampleSubtype deriva el subtipo de una muestra: MC (macinato) solo si tanto
// la estantería como la caja empiezan por AL; TQ (tal quale) en cualquier otro
// caso.
func SampleSubtype(shelfCode, boxCode string) string {
	if strings.HasPrefix(strings.ToUpper(shelfCode), "AL") &&
		strings.HasPrefix(strings.ToUpper(boxCode), "AL") {
		return "MC"
	}
	return "TQ"
}

// ShelfPrefix deriva el prefijo almacenado en una estantería nueva.
func ShelfPrefix(code string) string {
	upper := strings.ToUpper(code)
	switch {
	case strings.HasPrefix(upper, "AL"):
		return "AL"
	case strings.HasPrefix(upper, "SC"):
		return "SC"
	default:
		return "SCAFFALE"
	}
}

// BoxPrefix deriva el prefijo almacenado en una caja nueva.
func BoxPrefix(code string) string {
	upper := strings.ToUpper(code)
	switch {
	case strings.HasPrefix(upper, "AL"):
		return "AL"
	case strings.HasPrefix(upper, "CA"):
		return "CA"
	default:
		return "CASSETTA"
	}
}
