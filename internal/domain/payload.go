package domain

// Payload é um payload estruturado opaco ao núcleo do sistema: um tipo
// identificador mais um mapa chave/valor. Usado para público-alvo, criativo
// e ações de sugestão, cujo conteúdo pertence ao Meta ou ao serviço de IA.
type Payload struct {
	Kind string                 `json:"kind,omitempty"`
	Data map[string]interface{} `json:"data,omitempty"`
}

// IsEmpty retorna verdadeiro quando o payload não carrega informação alguma
func (p *Payload) IsEmpty() bool {
	return p == nil || (p.Kind == "" && len(p.Data) == 0)
}
