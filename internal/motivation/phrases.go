package motivation

import "math/rand"

// Phrases shown on the dashboard and spoken by the periodic motivational
// prompt.
var phrases = []string{
	"Cada pequeno passo te aproxima do seu objetivo!",
	"O sucesso é a soma de pequenos esforços repetidos dia após dia.",
	"Você é mais forte do que imagina. Continue avançando!",
	"Sua persistência hoje constrói seu sucesso amanhã.",
	"Acredite em você mesmo e tudo se torna possível.",
	"O foco é sua maior ferramenta para vencer a procrastinação.",
	"Transforme seus desafios em oportunidades de crescimento.",
	"Não tenha medo de falhar, tenha medo de não tentar.",
	"Sua capacidade de organização é seu superpoder!",
	"Pequenas vitórias diárias constroem grandes conquistas.",
	"A disciplina é a ponte entre objetivos e realizações.",
	"Cada tarefa concluída é uma prova do seu potencial.",
	"Sua dedicação de hoje será sua realização de amanhã.",
	"Mantenha o foco no progresso, não na perfeição.",
	"O tempo é seu recurso mais valioso, use-o com sabedoria.",
	"Você é amado e valorizado por quem importa na sua vida.",
	"Seu trabalho tem impacto, mesmo nos dias difíceis.",
	"Sua família reconhece seu esforço e dedicação.",
	"Cuide de si com o mesmo amor que dedica aos outros.",
	"Momentos de descanso são tão importantes quanto os de produtividade.",
}

// RandomPhrase picks a motivational phrase at random.
func RandomPhrase() string {
	return phrases[rand.Intn(len(phrases))]
}
