// internal/ads/templates/catalog_hi.go
package templates

import "visa-platform/internal/visa/pricing"

var templatesHI = map[pricing.ServiceType]Template{
	pricing.ServiceUrgent1H: {
		Headlines: []string{
			"1 घंटे में वियतनाम वीजा",
			"अर्जेंट वीजा - अभी!",
			"इमरजेंसी एयरपोर्ट वीजा",
			"{AIRPORT} वियतनाम वीजा",
			"60 मिनट में अप्रूवल",
			"अर्जेंट वीजा सेवा",
			"फास्ट वीजा हेल्प",
			"आज वियतनाम वीजा",
			"एक्सप्रेस वीजा वियतनाम",
			"लास्ट मिनट वीजा",
		},
		Descriptions: []string{
			"{AIRPORT} पर फंसे? वियतनाम वीजा 1 घंटे में। मैनुअल प्रोसेसिंग।",
			"इमरजेंसी वीजा सेवा उपलब्ध। ऑनलाइन अप्लाई करें, आज उड़ें।",
			"अर्जेंट वीजा चाहिए? 60 मिनट में प्रोसेसिंग। गारंटीड अप्रूवल।",
			"सबसे तेज वीजा सेवा। {PRICE} से। अभी अप्लाई करें।",
		},
		FinalURL: baseURL + "/apply?service=urgent-1h&lang=hi",
		Keywords: []string{
			"अर्जेंट वियतनाम वीजा",
			"वियतनाम वीजा 1 घंटा",
			"इमरजेंसी वियतनाम वीजा",
		},
	},
	pricing.ServiceUrgent2H: {
		Headlines: []string{
			"2 घंटे में वियतनाम वीजा",
			"फास्ट प्रोसेसिंग",
			"2 घंटे में अप्रूवल",
			"{AIRPORT} फास्ट वीजा",
			"एक्सप्रेस वियतनाम वीजा",
			"फास्ट वीजा सेवा",
			"वियतनाम वीजा एक्सप्रेस",
			"प्रायोरिटी वीजा",
			"प्रायोरिटी वियतनाम",
			"फास्ट वीजा वियतनाम",
		},
		Descriptions: []string{
			"वियतनाम वीजा 2 घंटे में अप्रूव। टाइट शेड्यूल के लिए परफेक्ट।",
			"वियतनाम के लिए एक्सप्रेस प्रोसेसिंग। {PRICE} से। फास्ट और गारंटीड।",
			"वीजा जल्दी चाहिए? 2 घंटे की प्रोसेसिंग अभी उपलब्ध।",
			"{AIRPORT} से प्रायोरिटी सेवा। सिर्फ 2 घंटे में अप्रूव।",
		},
		FinalURL: baseURL + "/apply?service=urgent-2h&lang=hi",
		Keywords: []string{
			"फास्ट वियतनाम वीजा",
			"वियतनाम वीजा 2 घंटे",
			"एक्सप्रेस वियतनाम वीजा",
		},
	},
	pricing.ServiceUrgent4H: {
		Headlines: []string{
			"4 घंटे में वियतनाम वीजा",
			"सेम डे वीजा सेवा",
			"4 घंटे में अप्रूवल",
			"एक्सप्रेस वीजा आज",
			"फास्ट वियतनाम वीजा",
			"{AIRPORT} एक्सप्रेस वीजा",
			"उड़ान से पहले वीजा",
			"फास्ट प्रोसेसिंग",
			"सेम डे वियतनाम",
			"आज वियतनाम वीजा",
		},
		Descriptions: []string{
			"वियतनाम वीजा 4 घंटे में। अभी अप्लाई करें, आज ही अप्रूवल पाएं।",
			"वियतनाम के लिए सेम डे वीजा सेवा। प्रोफेशनल प्रोसेसिंग।",
			"आज वियतनाम जा रहे हैं? 4 घंटे में वीजा अप्रूव। ऑनलाइन अप्लाई।",
			"फास्ट प्रोसेसिंग। 4 घंटे। हजारों यात्रियों का भरोसा।",
		},
		FinalURL: baseURL + "/apply?service=urgent-4h&lang=hi",
		Keywords: []string{
			"सेम डे वियतनाम वीजा",
			"वियतनाम वीजा 4 घंटे",
			"आज वियतनाम वीजा",
		},
	},
	pricing.Service1Day: {
		Headlines: []string{
			"1 दिन वियतनाम वीजा",
			"नेक्स्ट डे वीजा सेवा",
			"कल वियतनाम वीजा",
			"फास्ट प्रोसेसिंग",
			"24 घंटे सेवा",
			"फास्ट अप्रूवल",
			"ई-वीजा वियतनाम",
			"1 बिजनेस डे वीजा",
			"भरोसेमंद सेवा",
			"ट्रस्टेड एजेंसी",
		},
		Descriptions: []string{
			"वियतनाम वीजा 1 बिजनेस डे में। प्रोफेशनल, गारंटीड अप्रूवल।",
			"कल वीजा चाहिए? आज अप्लाई करें, 24 घंटे में अप्रूवल।",
			"फास्ट और भरोसेमंद वीजा सेवा। 1 दिन में प्रोसेसिंग।",
			"यात्रियों का भरोसा। वियतनाम वीजा सिर्फ 1 बिजनेस डे में।",
		},
		FinalURL: baseURL + "/apply?service=1day&lang=hi",
		Keywords: []string{
			"वियतनाम वीजा 1 दिन",
			"वियतनाम वीजा 24 घंटे",
			"फास्ट वियतनाम वीजा",
		},
	},
	pricing.Service2Day: {
		Headlines: []string{
			"2 दिन वियतनाम वीजा",
			"वियतनाम वीजा सेवा",
			"फास्ट प्रोसेसिंग",
			"भरोसेमंद एजेंसी",
			"ई-वीजा वियतनाम",
			"भरोसेमंद सेवा",
			"आसान आवेदन",
			"वीजा एक्सपर्ट्स",
			"सस्ता वीजा",
			"टूरिस्ट वीजा वियतनाम",
		},
		Descriptions: []string{
			"वियतनाम वीजा 2 बिजनेस डे में। सस्ती कीमत, प्रोफेशनल सेवा।",
			"ऑनलाइन वियतनाम वीजा अप्लाई करें। 2 दिन प्रोसेसिंग गारंटीड।",
			"वियतनाम यात्रा की योजना? 2 दिन में वीजा। आसान ऑनलाइन आवेदन।",
			"भरोसेमंद सेवा। फास्ट प्रोसेसिंग, कॉम्पिटिटिव कीमतें।",
		},
		FinalURL: baseURL + "/apply?service=2day&lang=hi",
		Keywords: []string{
			"वियतनाम वीजा 2 दिन",
			"वियतनाम वीजा ऑनलाइन",
			"ई-वीजा वियतनाम",
		},
	},
	pricing.ServiceWeekend: {
		Headlines: []string{
			"वीकेंड वीजा सेवा",
			"शनिवार/रविवार वीजा",
			"छुट्टी में वीजा हेल्प",
			"वीकेंड प्रोसेसिंग",
			"वियतनाम वीजा वीकेंड",
			"ऑफ-आवर्स सेवा",
			"वीकेंड एक्सपर्ट्स",
			"छुट्टी वीजा सेवा",
			"वीकेंड पर खुला",
			"वियतनाम वीजा 24/7",
		},
		Descriptions: []string{
			"इस वीकेंड वियतनाम वीजा चाहिए? हम शनिवार-रविवार काम करते हैं।",
			"वीकेंड वीजा सेवा। ऑफिस बंद होने पर प्रीमियम प्रोसेसिंग।",
			"शनिवार को फंसे? वीकेंड पर वियतनाम वीजा प्रोसेस करते हैं।",
			"छुट्टी में वीजा इमरजेंसी? हमारी टीम तैयार है। {PRICE} से।",
		},
		FinalURL: baseURL + "/apply?service=weekend&lang=hi",
		Keywords: []string{
			"वियतनाम वीजा वीकेंड",
			"वियतनाम वीजा शनिवार",
			"वियतनाम वीजा रविवार",
		},
	},
	pricing.ServiceStandard: {
		Headlines: []string{
			"वियतनाम वीजा ऑनलाइन",
			"आसान वीजा आवेदन",
			"ई-वीजा सेवा",
			"सस्ता वियतनाम वीजा",
			"वियतनाम वीजा अप्लाई",
			"टूरिस्ट वीजा वियतनाम",
			"ऑनलाइन वीजा सेवा",
			"वियतनाम वीजा हेल्प",
			"बजट वियतनाम वीजा",
			"बेस्ट वीजा सेवा",
		},
		Descriptions: []string{
			"वियतनाम वीजा आसान। मिनटों में ऑनलाइन अप्लाई करें। सिर्फ {PRICE} से।",
			"वियतनाम यात्रा की योजना? ऑनलाइन वीजा। फास्ट, आसान, सस्ता।",
			"प्रोफेशनल वियतनाम वीजा सेवा। हजारों खुश यात्री। आज अप्लाई करें।",
			"वियतनाम वीजा पाने का सबसे आसान तरीका। फास्ट ऑनलाइन आवेदन।",
		},
		FinalURL: baseURL + "/apply?lang=hi",
		Keywords: []string{
			"वियतनाम वीजा",
			"ई-वीजा वियतनाम",
			"वियतनाम वीजा ऑनलाइन",
			"वियतनाम वीजा अप्लाई",
		},
	},
}
