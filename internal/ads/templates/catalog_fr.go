// internal/ads/templates/catalog_fr.go
package templates

import "visa-platform/internal/visa/pricing"

var templatesFR = map[pricing.ServiceType]Template{
	pricing.ServiceUrgent1H: {
		Headlines: []string{
			"Visa Vietnam en 1 Heure",
			"Visa Urgent - Maintenant!",
			"Urgence Aeroport Visa",
			"{AIRPORT} Visa Vietnam",
			"Approuve en 60 Minutes",
			"Service Visa Urgent",
			"Aide Visa Rapide",
			"Visa Vietnam Aujourdhui",
			"Visa Express Vietnam",
			"Visa Derniere Minute",
		},
		Descriptions: []string{
			"Bloque a {AIRPORT}? Visa Vietnam approuve en 1 heure. Traitement manuel.",
			"Service visa urgence disponible. Demandez en ligne, embarquez aujourdhui.",
			"Besoin visa urgent? Traitement en 60 minutes. Approbation garantie.",
			"Service visa le plus rapide. A partir de {PRICE}. Demandez maintenant.",
		},
		FinalURL: baseURL + "/apply?service=urgent-1h&lang=fr",
		Keywords: []string{
			"visa vietnam urgent",
			"visa vietnam 1 heure",
			"visa urgence vietnam",
		},
	},
	pricing.ServiceUrgent2H: {
		Headlines: []string{
			"Visa Vietnam en 2 Heures",
			"Traitement Rapide",
			"Approbation 2 Heures",
			"{AIRPORT} Visa Rapide",
			"Visa Express Vietnam",
			"Service Visa Rapide",
			"Vietnam Visa Express",
			"Voie Rapide Visa",
			"Priorite Vietnam",
			"Visa Rapide Vietnam",
		},
		Descriptions: []string{
			"Visa Vietnam approuve en 2 heures. Parfait pour emplois du temps serres.",
			"Traitement express pour Vietnam. A partir de {PRICE}. Rapide et garanti.",
			"Besoin visa rapidement? Traitement 2 heures disponible maintenant.",
			"Service prioritaire de {AIRPORT}. Approuve en seulement 2 heures.",
		},
		FinalURL: baseURL + "/apply?service=urgent-2h&lang=fr",
		Keywords: []string{
			"visa vietnam rapide",
			"visa vietnam 2 heures",
			"visa express vietnam",
		},
	},
	pricing.ServiceUrgent4H: {
		Headlines: []string{
			"Visa Vietnam en 4 Heures",
			"Visa Meme Jour",
			"Approbation 4 Heures",
			"Visa Express Aujourdhui",
			"Visa Rapide Vietnam",
			"{AIRPORT} Visa Express",
			"Visa Avant Vol",
			"Traitement Rapide",
			"Meme Jour Vietnam",
			"Visa Vietnam Aujourdhui",
		},
		Descriptions: []string{
			"Visa Vietnam en 4 heures. Demandez maintenant, approbation aujourdhui.",
			"Service visa meme jour pour Vietnam. Traitement professionnel.",
			"Vol vers Vietnam aujourdhui? Visa approuve en 4 heures. Demande en ligne.",
			"Traitement rapide. 4 heures. Fait confiance par des milliers.",
		},
		FinalURL: baseURL + "/apply?service=urgent-4h&lang=fr",
		Keywords: []string{
			"visa vietnam meme jour",
			"visa vietnam 4 heures",
			"visa vietnam aujourdhui",
		},
	},
	pricing.Service1Day: {
		Headlines: []string{
			"Visa Vietnam 1 Jour",
			"Visa Jour Suivant",
			"Visa Vietnam Demain",
			"Traitement Rapide",
			"Service 24 Heures",
			"Approbation Rapide",
			"E-Visa Vietnam",
			"Visa 1 Jour Ouvre",
			"Service Fiable",
			"Agence de Confiance",
		},
		Descriptions: []string{
			"Visa Vietnam en 1 jour ouvre. Service professionnel, approbation garantie.",
			"Besoin visa demain? Demandez aujourdhui, approbation en 24 heures.",
			"Service visa rapide et fiable. Traitement en 1 jour.",
			"Confiance des voyageurs. Visa Vietnam en seulement 1 jour ouvre.",
		},
		FinalURL: baseURL + "/apply?service=1day&lang=fr",
		Keywords: []string{
			"visa vietnam 1 jour",
			"visa vietnam 24 heures",
			"visa vietnam rapide",
		},
	},
	pricing.Service2Day: {
		Headlines: []string{
			"Visa Vietnam 2 Jours",
			"Service Visa Vietnam",
			"Traitement Rapide",
			"Agence Fiable",
			"E-Visa Vietnam",
			"Service Fiable",
			"Demande Facile",
			"Experts Visa",
			"Visa Abordable",
			"Visa Touriste Vietnam",
		},
		Descriptions: []string{
			"Visa Vietnam en 2 jours ouvrables. Prix abordables, service professionnel.",
			"Demandez votre visa Vietnam en ligne. Traitement 2 jours garanti.",
			"Voyage au Vietnam? Visa en 2 jours. Demande facile en ligne.",
			"Service fiable. Traitement rapide, prix competitifs.",
		},
		FinalURL: baseURL + "/apply?service=2day&lang=fr",
		Keywords: []string{
			"visa vietnam 2 jours",
			"visa vietnam en ligne",
			"e-visa vietnam",
		},
	},
	pricing.ServiceWeekend: {
		Headlines: []string{
			"Visa Week-end",
			"Samedi/Dimanche Visa",
			"Aide Visa Ferie",
			"Traitement Week-end",
			"Visa Vietnam Week-end",
			"Service Hors Horaires",
			"Experts Week-end",
			"Service Visa Ferie",
			"Ouvert Week-end",
			"Visa Vietnam 24/7",
		},
		Descriptions: []string{
			"Besoin visa Vietnam ce week-end? On travaille samedis et dimanches.",
			"Service visa week-end. Traitement premium quand bureaux fermes.",
			"Bloque un samedi? On traite visas Vietnam les week-ends.",
			"Urgence visa ferie? Notre equipe est prete. A partir de {PRICE}.",
		},
		FinalURL: baseURL + "/apply?service=weekend&lang=fr",
		Keywords: []string{
			"visa vietnam week-end",
			"visa vietnam samedi",
			"visa vietnam dimanche",
		},
	},
	pricing.ServiceStandard: {
		Headlines: []string{
			"Visa Vietnam en Ligne",
			"Demande Facile Visa",
			"Service E-Visa",
			"Visa Vietnam Pas Cher",
			"Demander Visa Vietnam",
			"Visa Touriste Vietnam",
			"Service Visa en Ligne",
			"Aide Visa Vietnam",
			"Visa Vietnam Economique",
			"Meilleur Service Visa",
		},
		Descriptions: []string{
			"Visa Vietnam facile. Demandez en ligne en minutes. A partir de {PRICE}.",
			"Voyage au Vietnam? Visa en ligne. Rapide, facile, abordable.",
			"Service professionnel visa Vietnam. Des milliers de voyageurs satisfaits.",
			"Facon la plus facile dobtenir visa Vietnam. Demande en ligne rapide.",
		},
		FinalURL: baseURL + "/apply?lang=fr",
		Keywords: []string{
			"visa vietnam",
			"e-visa vietnam",
			"visa vietnam en ligne",
			"demander visa vietnam",
		},
	},
}
