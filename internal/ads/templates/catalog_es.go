// internal/ads/templates/catalog_es.go
package templates

import "visa-platform/internal/visa/pricing"

var templatesES = map[pricing.ServiceType]Template{
	pricing.ServiceUrgent1H: {
		Headlines: []string{
			"Visa Vietnam en 1 Hora",
			"Visa Urgente - Ya!",
			"Visa Emergencia Aeropuerto",
			"{AIRPORT} Visa Vietnam",
			"Aprobado en 60 Minutos",
			"Servicio Visa Urgente",
			"Ayuda Visa Rapida",
			"Visa Vietnam Hoy",
			"Visa Express Vietnam",
			"Visa Ultimo Minuto",
		},
		Descriptions: []string{
			"Atrapado en {AIRPORT}? Visa Vietnam aprobada en 1 hora. Procesamiento manual.",
			"Servicio de visa de emergencia disponible. Solicite en linea, vuele hoy.",
			"Necesita visa urgente? Procesamos en 60 minutos. Aprobacion garantizada.",
			"Servicio de visa mas rapido. Desde {PRICE}. Solicite ahora.",
		},
		FinalURL: baseURL + "/apply?service=urgent-1h&lang=es",
		Keywords: []string{
			"visa vietnam urgente",
			"visa vietnam 1 hora",
			"visa emergencia vietnam",
			"visa rapida vietnam",
		},
	},
	pricing.ServiceUrgent2H: {
		Headlines: []string{
			"Visa Vietnam en 2 Horas",
			"Procesamiento Rapido",
			"Aprobacion en 2 Horas",
			"{AIRPORT} Visa Rapida",
			"Visa Express Vietnam",
			"Servicio Visa Rapido",
			"Vietnam Visa Express",
			"Via Rapida Visa",
			"Prioridad Vietnam",
			"Visa Rapida Vietnam",
		},
		Descriptions: []string{
			"Visa Vietnam aprobada en 2 horas. Perfecto para horarios ajustados.",
			"Procesamiento express para Vietnam. Desde {PRICE}. Rapido y garantizado.",
			"Necesita su visa rapido? Procesamiento en 2 horas disponible ahora.",
			"Servicio prioritario desde {AIRPORT}. Aprobado en solo 2 horas.",
		},
		FinalURL: baseURL + "/apply?service=urgent-2h&lang=es",
		Keywords: []string{
			"visa vietnam rapida",
			"visa vietnam 2 horas",
			"visa express vietnam",
		},
	},
	pricing.ServiceUrgent4H: {
		Headlines: []string{
			"Visa Vietnam en 4 Horas",
			"Visa Mismo Dia",
			"Aprobacion en 4 Horas",
			"Visa Express Hoy",
			"Visa Rapida Vietnam",
			"{AIRPORT} Visa Express",
			"Visa Antes de Volar",
			"Procesamiento Rapido",
			"Mismo Dia Vietnam",
			"Visa Vietnam Hoy",
		},
		Descriptions: []string{
			"Visa Vietnam en 4 horas. Solicite ahora y reciba aprobacion hoy mismo.",
			"Servicio de visa mismo dia para Vietnam. Procesamiento profesional.",
			"Volando a Vietnam hoy? Visa aprobada en 4 horas. Solicite en linea.",
			"Procesamiento rapido. 4 horas. Confiado por miles de viajeros.",
		},
		FinalURL: baseURL + "/apply?service=urgent-4h&lang=es",
		Keywords: []string{
			"visa vietnam mismo dia",
			"visa vietnam 4 horas",
			"visa vietnam hoy",
		},
	},
	pricing.Service1Day: {
		Headlines: []string{
			"Visa Vietnam 1 Dia",
			"Visa Dia Siguiente",
			"Visa Vietnam Manana",
			"Procesamiento Rapido",
			"Servicio 24 Horas",
			"Aprobacion Rapida",
			"E-Visa Vietnam",
			"Visa 1 Dia Habil",
			"Servicio Confiable",
			"Agencia de Confianza",
		},
		Descriptions: []string{
			"Visa Vietnam en 1 dia habil. Servicio profesional, aprobacion garantizada.",
			"Necesita visa manana? Solicite hoy, reciba aprobacion en 24 horas.",
			"Servicio de visa rapido y confiable. Procesamiento en 1 dia.",
			"Confiado por viajeros. Visa Vietnam en solo 1 dia habil.",
		},
		FinalURL: baseURL + "/apply?service=1day&lang=es",
		Keywords: []string{
			"visa vietnam 1 dia",
			"visa vietnam 24 horas",
			"visa vietnam rapida",
		},
	},
	pricing.Service2Day: {
		Headlines: []string{
			"Visa Vietnam 2 Dias",
			"Servicio Visa Vietnam",
			"Procesamiento Rapido",
			"Agencia Confiable",
			"E-Visa Vietnam",
			"Servicio Confiable",
			"Solicitud Facil",
			"Expertos en Visa",
			"Visa Asequible",
			"Visa Turista Vietnam",
		},
		Descriptions: []string{
			"Visa Vietnam en 2 dias habiles. Precios asequibles, servicio profesional.",
			"Solicite su visa Vietnam en linea. Procesamiento en 2 dias garantizado.",
			"Planificando viaje a Vietnam? Visa en 2 dias. Solicitud facil en linea.",
			"Servicio confiable. Procesamiento rapido, precios competitivos.",
		},
		FinalURL: baseURL + "/apply?service=2day&lang=es",
		Keywords: []string{
			"visa vietnam 2 dias",
			"visa vietnam en linea",
			"e-visa vietnam",
		},
	},
	pricing.ServiceWeekend: {
		Headlines: []string{
			"Visa Fin de Semana",
			"Sabado/Domingo Visa",
			"Ayuda Visa Festivo",
			"Procesamiento Finde",
			"Visa Vietnam Finde",
			"Servicio Fuera Horario",
			"Expertos Fin Semana",
			"Servicio Visa Festivo",
			"Abierto Fin Semana",
			"Visa Vietnam 24/7",
		},
		Descriptions: []string{
			"Necesita visa Vietnam este fin de semana? Trabajamos sabados y domingos.",
			"Servicio de visa fin de semana. Procesamiento premium cuando oficinas cerradas.",
			"Atrapado un sabado? Procesamos visas Vietnam los fines de semana.",
			"Emergencia visa festivo? Nuestro equipo esta listo. Desde {PRICE}.",
		},
		FinalURL: baseURL + "/apply?service=weekend&lang=es",
		Keywords: []string{
			"visa vietnam fin semana",
			"visa vietnam sabado",
			"visa vietnam domingo",
		},
	},
	pricing.ServiceStandard: {
		Headlines: []string{
			"Visa Vietnam Online",
			"Solicitud Facil Visa",
			"Servicio E-Visa",
			"Visa Vietnam Barata",
			"Solicitar Visa Vietnam",
			"Visa Turista Vietnam",
			"Servicio Visa Online",
			"Ayuda Visa Vietnam",
			"Visa Vietnam Economica",
			"Mejor Servicio Visa",
		},
		Descriptions: []string{
			"Visa Vietnam facil. Solicite en linea en minutos. Desde solo {PRICE}.",
			"Planificando viaje a Vietnam? Visa en linea. Rapido, facil, asequible.",
			"Servicio profesional de visa Vietnam. Miles de viajeros felices.",
			"La forma mas facil de obtener visa Vietnam. Solicitud en linea rapida.",
		},
		FinalURL: baseURL + "/apply?lang=es",
		Keywords: []string{
			"visa vietnam",
			"e-visa vietnam",
			"visa vietnam online",
			"solicitar visa vietnam",
		},
	},
}
