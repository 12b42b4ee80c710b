// internal/ads/templates/catalog_pt.go
package templates

import "visa-platform/internal/visa/pricing"

var templatesPT = map[pricing.ServiceType]Template{
	pricing.ServiceUrgent1H: {
		Headlines: []string{
			"Visto Vietna em 1 Hora",
			"Visto Urgente - Agora!",
			"Emergencia Aeroporto",
			"{AIRPORT} Visto Vietna",
			"Aprovado em 60 Minutos",
			"Servico Visto Urgente",
			"Ajuda Visto Rapido",
			"Visto Vietna Hoje",
			"Visto Express Vietna",
			"Visto Ultima Hora",
		},
		Descriptions: []string{
			"Preso no {AIRPORT}? Visto Vietna aprovado em 1 hora. Processamento manual.",
			"Servico de visto emergencia disponivel. Solicite online, voe hoje.",
			"Precisa visto urgente? Processamos em 60 minutos. Aprovacao garantida.",
			"Servico de visto mais rapido. A partir de {PRICE}. Solicite agora.",
		},
		FinalURL: baseURL + "/apply?service=urgent-1h&lang=pt",
		Keywords: []string{
			"visto vietna urgente",
			"visto vietna 1 hora",
			"visto emergencia vietna",
		},
	},
	pricing.ServiceUrgent2H: {
		Headlines: []string{
			"Visto Vietna em 2 Horas",
			"Processamento Rapido",
			"Aprovacao em 2 Horas",
			"{AIRPORT} Visto Rapido",
			"Visto Express Vietna",
			"Servico Visto Rapido",
			"Vietna Visto Express",
			"Via Rapida Visto",
			"Prioridade Vietna",
			"Visto Rapido Vietna",
		},
		Descriptions: []string{
			"Visto Vietna aprovado em 2 horas. Perfeito para horarios apertados.",
			"Processamento express para Vietna. A partir de {PRICE}. Rapido e garantido.",
			"Precisa do visto rapido? Processamento em 2 horas disponivel agora.",
			"Servico prioritario de {AIRPORT}. Aprovado em apenas 2 horas.",
		},
		FinalURL: baseURL + "/apply?service=urgent-2h&lang=pt",
		Keywords: []string{
			"visto vietna rapido",
			"visto vietna 2 horas",
			"visto express vietna",
		},
	},
	pricing.ServiceUrgent4H: {
		Headlines: []string{
			"Visto Vietna em 4 Horas",
			"Visto Mesmo Dia",
			"Aprovacao em 4 Horas",
			"Visto Express Hoje",
			"Visto Rapido Vietna",
			"{AIRPORT} Visto Express",
			"Visto Antes de Voar",
			"Processamento Rapido",
			"Mesmo Dia Vietna",
			"Visto Vietna Hoje",
		},
		Descriptions: []string{
			"Visto Vietna em 4 horas. Solicite agora e receba aprovacao hoje.",
			"Servico de visto mesmo dia para Vietna. Processamento profissional.",
			"Voando para Vietna hoje? Visto aprovado em 4 horas. Solicite online.",
			"Processamento rapido. 4 horas. Confiado por milhares de viajantes.",
		},
		FinalURL: baseURL + "/apply?service=urgent-4h&lang=pt",
		Keywords: []string{
			"visto vietna mesmo dia",
			"visto vietna 4 horas",
			"visto vietna hoje",
		},
	},
	pricing.Service1Day: {
		Headlines: []string{
			"Visto Vietna 1 Dia",
			"Visto Proximo Dia",
			"Visto Vietna Amanha",
			"Processamento Rapido",
			"Servico 24 Horas",
			"Aprovacao Rapida",
			"E-Visto Vietna",
			"Visto 1 Dia Util",
			"Servico Confiavel",
			"Agencia Confiavel",
		},
		Descriptions: []string{
			"Visto Vietna em 1 dia util. Servico profissional, aprovacao garantida.",
			"Precisa visto amanha? Solicite hoje, receba aprovacao em 24 horas.",
			"Servico de visto rapido e confiavel. Processamento em 1 dia.",
			"Confiado por viajantes. Visto Vietna em apenas 1 dia util.",
		},
		FinalURL: baseURL + "/apply?service=1day&lang=pt",
		Keywords: []string{
			"visto vietna 1 dia",
			"visto vietna 24 horas",
			"visto vietna rapido",
		},
	},
	pricing.Service2Day: {
		Headlines: []string{
			"Visto Vietna 2 Dias",
			"Servico Visto Vietna",
			"Processamento Rapido",
			"Agencia Confiavel",
			"E-Visto Vietna",
			"Servico Confiavel",
			"Solicitacao Facil",
			"Especialistas Visto",
			"Visto Acessivel",
			"Visto Turista Vietna",
		},
		Descriptions: []string{
			"Visto Vietna em 2 dias uteis. Precos acessiveis, servico profissional.",
			"Solicite seu visto Vietna online. Processamento em 2 dias garantido.",
			"Planejando viagem ao Vietna? Visto em 2 dias. Solicitacao facil.",
			"Servico confiavel. Processamento rapido, precos competitivos.",
		},
		FinalURL: baseURL + "/apply?service=2day&lang=pt",
		Keywords: []string{
			"visto vietna 2 dias",
			"visto vietna online",
			"e-visto vietna",
		},
	},
	pricing.ServiceWeekend: {
		Headlines: []string{
			"Visto Fim de Semana",
			"Sabado/Domingo Visto",
			"Ajuda Visto Feriado",
			"Processamento Finde",
			"Visto Vietna Finde",
			"Servico Fora Horario",
			"Especialistas Finde",
			"Servico Visto Feriado",
			"Aberto Fim Semana",
			"Visto Vietna 24/7",
		},
		Descriptions: []string{
			"Precisa visto Vietna este fim de semana? Trabalhamos sabados e domingos.",
			"Servico de visto fim de semana. Processamento premium quando fechado.",
			"Preso num sabado? Processamos vistos Vietna nos fins de semana.",
			"Emergencia visto feriado? Nossa equipe esta pronta. A partir de {PRICE}.",
		},
		FinalURL: baseURL + "/apply?service=weekend&lang=pt",
		Keywords: []string{
			"visto vietna fim semana",
			"visto vietna sabado",
			"visto vietna domingo",
		},
	},
	pricing.ServiceStandard: {
		Headlines: []string{
			"Visto Vietna Online",
			"Solicitacao Facil",
			"Servico E-Visto",
			"Visto Vietna Barato",
			"Solicitar Visto Vietna",
			"Visto Turista Vietna",
			"Servico Visto Online",
			"Ajuda Visto Vietna",
			"Visto Vietna Economico",
			"Melhor Servico Visto",
		},
		Descriptions: []string{
			"Visto Vietna facil. Solicite online em minutos. A partir de {PRICE}.",
			"Planejando viagem ao Vietna? Visto online. Rapido, facil, acessivel.",
			"Servico profissional de visto Vietna. Milhares de viajantes felizes.",
			"A forma mais facil de obter visto Vietna. Solicitacao online rapida.",
		},
		FinalURL: baseURL + "/apply?lang=pt",
		Keywords: []string{
			"visto vietna",
			"e-visto vietna",
			"visto vietna online",
			"solicitar visto vietna",
		},
	},
}
