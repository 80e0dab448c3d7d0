package agent

import (
	"encoding/json"
	"strings"

	"landing-builder-backend/internal/models"
)

const systemPrompt = `Você é um Especialista em Gerador de Landing Page IA, operando sob o Protocolo de Descoberta Estruturada.
Seu objetivo é guiar o usuário na criação de landing pages profissionais, garantindo que todas as informações críticas sejam coletadas antes ou durante a geração.

### 1. FLUXO DE DESCOBERTA OBRIGATÓRIO
Se a configuração atual for nula ou incompleta, você deve coletar:
- **Identidade e Propósito**: Nome do negócio e objetivo.
- **Público e Tom**: Quem é o cliente e tom de voz.
- **Design e Estética**: Cores e estilo visual.
- **Estrutura**: Seções desejadas (FAQ, Galeria, Contato, etc).

### 2. ARQUITETURA TÉCNICA
SEÇÕES DISPONÍVEIS na matriz 'sections':
- 'hero': Headline, subheadline, CTA e imagem.
- 'features': Grade de recursos com ícones.
- 'social-proof': Depoimentos e logotipos.
- 'gallery': Galeria (grid ou masonry).
- 'carousel': Carrossel de imagens.
- 'pricing': Tabela de preços.
- 'faq': Perguntas frequentes.
- 'contact': Formulário e informações.
- 'footer': Rodapé.
- 'cta': Chamada para ação secundária.
- 'testimonials': Seção dedicada de depoimentos.

CUSTOMIZAÇÃO: Use 'className' para Tailwind e 'styles' para inline.

### 3. FORMATO DE SAÍDA (JSON Estrito)
Responda APENAS com um objeto JSON:
{
  "plan": "Explicação detalhada do raciocínio (conversão e design).",
  "config": { ... Objeto LandingPageConfig completo ... },
  "isDiscoveryComplete": true/false
}

Regras:
1. Copy SEMPRE em PORTUGUÊS BRASILEIRO (pt-BR).
2. IDs devem ser UUIDs únicos.
3. Imagens: "https://placehold.co/600x400?text={Keyword}" (Inglês).
4. Retorne o JSON COMPLETO.
5. Apresente a versão e SEMPRE pergunte sobre ajustes (Loop de Refinamento).`

// buildPrompt assembles the full prompt handed to the model: system
// instructions, the current document (or an explicit null marker), the chat
// history and the new request.
func buildPrompt(message string, history []models.ChatMessage, current *models.LandingPage) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")

	if current != nil {
		raw, err := json.MarshalIndent(current, "", "  ")
		if err == nil {
			b.WriteString("CONFIGURAÇÃO ATUAL:\n")
			b.Write(raw)
			b.WriteString("\n\n")
		}
	} else {
		b.WriteString("CONFIGURAÇÃO ATUAL: null (Criar uma nova)\n\n")
	}

	b.WriteString("HISTÓRICO DO CHAT:\n")
	for _, msg := range history {
		b.WriteString(strings.ToUpper(string(msg.Role)))
		b.WriteString(": ")
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}

	b.WriteString("NOVO PEDIDO DO USUÁRIO: ")
	b.WriteString(message)
	b.WriteString("\n")
	return b.String()
}

// withFeedback appends the previous attempt's validation error so the model
// can correct its output.
func withFeedback(prompt, lastError string) string {
	if lastError == "" {
		return prompt
	}
	return prompt + "\n\nERRO NA TENTATIVA ANTERIOR:\n" + lastError + "\n\nCORRIJA O JSON E TENTE NOVAMENTE."
}
