package catalog

import "github.com/ai8v/coursepage/domain"

// Default returns the built-in catalog. The lessons count of every course is
// derived from its curriculum before the catalog is handed out.
func Default() *Catalog {
	c := &Catalog{
		Courses: courses,
		Categories: map[string]Category{
			"Business":  {Color: "teal"},
			"Marketing": {Color: "emerald"},
			"Developer": {Color: "emerald"},
		},
		WhatsAppNumber: "201556450850",
		BrandName:      "Ai8V | Mind & Machine",
		Domain:         "ai8v.com",
		Meta: Meta{
			Tagline: "Ai8V | Where Mind Meets Machine",

			Description: "نؤمن أن الذكاء الاصطناعي ليس أداة دعم، بل شريك استراتيجي يعيد تعريف طريقة التنفيذ واتخاذ القرار. " +
				"في Ai8V نعيد هندسة العلاقة بين الإنسان والآلة، بحيث يقود الإنسان الرؤية، وتُسرّع النماذج الذكية الأداء — " +
				"لنصل معًا إلى مستوى جديد من الكفاءة والابتكار.",

			DescriptionShort: "في Ai8V نعيد هندسة العلاقة بين الإنسان والآلة — " +
				"كورسات متخصصة في الذكاء الاصطناعي بوصول مدى الحياة ودعم شخصي.",

			OGImage:          "/assets/img/og-image.png",
			SupportEmail:     "amr.omar304@gmail.com",
			FoundingYear:     "2025",
			WhatsAppDefault:  "مرحباً! عندي سؤال عن الكورسات.",
			LogoPath:         "/assets/img/fav180.png",
			LegalLastUpdated: "2026-02-20",
		},
	}
	deriveLessonCounts(c.Courses)
	return c
}

var courses = []domain.Course{
	{
		ID:            1,
		Title:         "DataMap Pro — Business Data Intelligence",
		Category:      "Marketing",
		Level:         "Beginner",
		Price:         49.00,
		OriginalPrice: 99.00,
		Students:      0,
		Lessons:       1,
		Rating:        0,
		Date:          "2025-02-21",
		Language:      "ar",
		Description:   "استخراج وتنظيف وتحليل بيانات الأنشطة التجارية من جوجل ماب مباشرة. أداة ذكية تعمل بالكامل في متصفحك بدون خوادم. بيانات نظيفة + تحليل ذكي + تصدير Excel جاهز للاستخدام. وصول مدى الحياة + تحديثات مستمرة.",
		Image:         "og-image.png",
		Instructor:    "DataMap Team",
		Tags:          []string{"data", "business", "google maps", "excel", "analytics"},
		DriveURL:      "",
		Objectives: []string{
			"استخراج بيانات أنشطة تجارية من جوجل ماب مباشرة",
			"تنظيف البيانات وكشف التكرارات تلقائياً",
			"تحليل البيانات مع رسوم بيانية وتقارير",
			"تصدير البيانات بصيغ متعددة (Excel/CSV)",
			"استخدام الاستنتاجات الذكية لفهم السوق",
			"بناء قائمة عملاء مؤهلين جاهزة للبيع",
		},
		Curriculum: []domain.Section{
			{
				Title: "البدء السريع",
				Lessons: []domain.Lesson{
					{Title: "مقدمة الأداة والمميزات", Duration: "03:00", Preview: true},
					{Title: "خطوات الاستخراج الأول", Duration: "05:00", Preview: true},
					{Title: "الإعدادات الأساسية", Duration: "04:00", Preview: false},
				},
			},
			{
				Title: "التنظيف والتحليل",
				Lessons: []domain.Lesson{
					{Title: "فهم التكرارات والدمج", Duration: "08:00", Preview: false},
					{Title: "الفلاتر والبحث المتقدم", Duration: "10:00", Preview: false},
					{Title: "الرسوم البيانية والتقارير", Duration: "07:00", Preview: false},
				},
			},
			{
				Title: "التصدير والاستخدام",
				Lessons: []domain.Lesson{
					{Title: "تصدير Excel/CSV", Duration: "05:00", Preview: false},
					{Title: "استخدام البيانات في التسويق", Duration: "06:00", Preview: false},
				},
			},
		},
		FAQ: []domain.FAQItem{
			{
				Question: "هل الأداة حقاً مجانية أم في تكاليف مخفية؟",
				Answer:   "49 دولار سنويا = كل شيء. لا تكاليف إضافية. الوصول مدى الحياة والتحديثات مستمرة.",
			},
			{
				Question: "كم بيانات أقدر أستخرج؟",
				Answer:   "بدون حد. الأداة تحمل ملايين السجلات. الحد الوحيد هو حجم ملف الاستيراد (50MB أقصى).",
			},
			{
				Question: "البيانات آمنة؟",
				Answer:   "100% آمنة. الأداة تعمل بالكامل في متصفحك. لا خوادم، لا تحميل سحابي. بيانات حساسة تبقى عندك.",
			},
			{
				Question: "أقدر أستخدمها بدون إنترنت؟",
				Answer:   "بعد التحميل الأول نعم. الأداة PWA — تعمل offline بالكامل عبر Service Worker.",
			},
			{
				Question: "في نسخة تجريبية؟",
				Answer:   "نعم، جرّب الأداة مجاناً للمدينة الأولى. بدون بطاقة ائتمان. كل شيء متاح.",
			},
			{
				Question: "كام عميل دفع بالفعل؟",
				Answer:   "أنت أول العملاء! 🎉 الأداة جديدة وقيمتها عالية جداً. كن من الأول.",
			},
		},
	},
	{
		ID:          2,
		Title:       "CourseBase — Your Course Website Platform",
		Category:    "Business",
		Level:       "Beginner",
		Price:       399.00,
		Students:    0,
		Lessons:     1,
		Rating:      0,
		Date:        "2026-02-23",
		Language:    "ar",
		Description: "منصة كورسات كاملة جاهزة للإطلاق — موقع احترافي باسمك ودومينك الخاص. تحصل على الكود الكامل + دليل تنفيذ خطوة بخطوة. بدون اشتراكات شهرية، بدون نسبة من مبيعاتك، بدون أي تكاليف تشغيل. استضافة مجانية على Cloudflare + نظام حماية محتوى متكامل + نظام تقييمات + تصميم احترافي داكن. كل الأرباح ليك 100%.",
		Image:       "co-image.png",
		Instructor:  "Ai8V Team",
		Tags:        []string{"website", "course platform", "business", "cloudflare", "Google Apps", "bootstrap", "white-label", "sell courses"},
		DriveURL:    "",
		Objectives: []string{
			"الحصول على منصة كورسات كاملة جاهزة للتخصيص والإطلاق",
			"ربط المنصة بدومينك الخاص واستضافة مجانية على Cloudflare",
			"إعداد نظام حماية المحتوى المدفوع (Worker + Apps Script + Google Sheets)",
			"تخصيص الهوية البصرية — الاسم والألوان والشعار والوصف من ملف واحد",
			"إدارة الطلاب والكورسات يدوياً بدون أي تكاليف تشغيل",
			"إطلاق موقعك بالكامل — من الدومين للنشر على Cloudflare Pages",
		},
		Curriculum: []domain.Section{
			{
				Title: "ملفات المشروع والتجهيز",
				Lessons: []domain.Lesson{
					{Title: "محتويات الحزمة — كل اللي هتحصل عليه", Duration: "05:00", Preview: true},
					{Title: "المتطلبات — حساب GitHub + Cloudflare + Google (كلهم مجاناً)", Duration: "03:00", Preview: true},
					{Title: "هيكل الملفات وشرح كل مجلد", Duration: "08:00", Preview: false},
				},
			},
			{
				Title: "التخصيص — خلّي المنصة باسمك",
				Lessons: []domain.Lesson{
					{Title: "تعديل بيانات الكورسات — الاسم والدومين والواتساب والوصف", Duration: "10:00", Preview: false},
					{Title: "تغيير الألوان والشعار والصور", Duration: "07:00", Preview: false},
					{Title: "إضافة كورساتك الخاصة — البيانات والمنهج والأسئلة", Duration: "12:00", Preview: false},
					{Title: "تعديل صفحات About والسياسات باسم مشروعك", Duration: "06:00", Preview: false},
				},
			},
			{
				Title: "الباك إند — نظام الحماية والتقييمات",
				Lessons: []domain.Lesson{
					{Title: "إنشاء ملف اكسيل بسيط  لإدارة الطلبة المسجلين", Duration: "05:00", Preview: false},
					{Title: " ربط الـ باك إند بالـ Sheet", Duration: "08:00", Preview: false},
					{Title: "إعداد Cloudflare Worker — الأسرار والمتغيرات والروابط", Duration: "10:00", Preview: false},
					{Title: "اختبار نظام الدخول والتقييمات", Duration: "06:00", Preview: false},
				},
			},
			{
				Title: "النشر والإطلاق",
				Lessons: []domain.Lesson{
					{Title: "رفع المشروع على GitHub", Duration: "04:00", Preview: false},
					{Title: "ربط GitHub بـ Cloudflare Pages", Duration: "05:00", Preview: false},
					{Title: "إعداد الدومين الخاص وشهادة SSL", Duration: "06:00", Preview: false},
					{Title: "اختبار الموقع بالكامل قبل الإطلاق", Duration: "05:00", Preview: false},
				},
			},
			{
				Title: "إدارة المنصة بعد الإطلاق",
				Lessons: []domain.Lesson{
					{Title: "إضافة طالب جديد — للـ Sheet", Duration: "04:00", Preview: false},
					{Title: "إضافة كورس جديد وتحديث المحتوى", Duration: "06:00", Preview: false},
					{Title: "التعامل مع المشاكل الشائعة وحلولها", Duration: "05:00", Preview: false},
				},
			},
		},
		FAQ: []domain.FAQItem{
			{
				Question: "إيه اللي هحصل عليه بالظبط؟",
				Answer:   "كود المشروع الكامل + كود Cloudflare Worker + كود Google Apps + دليل تنفيذ تفصيلي خطوة بخطوة. كل حاجة تحتاجها لإطلاق منصتك.",
			},
			{
				Question: "محتاج خبرة برمجة؟",
				Answer:   "لا. الدليل مصمم لأي حد يقدر يستخدم الكمبيوتر. كل خطوة موضحة بالتفصيل. التخصيص الأساسي هو تعديل ملف واحد فيه بياناتك.",
			},
			{
				Question: "فيه تكاليف شهرية أو مخفية؟",
				Answer:   "صفر. الاستضافة مجانية على Cloudflare. الباك إند مجاني على Google Apps. التكلفة الوحيدة هي الدومين (حوالي $10-15 سنوياً) — وده اختيارك أنت.",
			},
			{
				Question: "هتاخدوا نسبة من مبيعاتي؟",
				Answer:   "لا. المنصة ملكك 100%. كل الأرباح ليك. بتبيع بالسعر اللي أنت عايزه وبتقبض الفلوس مباشرة.",
			},
			{
				Question: "أقدر أبيع كورسات بأي سعر؟",
				Answer:   "أيوا. مفيش حد أدنى أو أقصى. أنت بتحدد أسعارك بالكامل.",
			},
			{
				Question: "أقدر أضيف كام كورس؟",
				Answer:   "بدون حد. تضيف كورسات في ملف البيانات وكل حاجة بتتحدث تلقائياً — الكتالوج والصفحة الرئيسية والفلاتر.",
			},
			{
				Question: "لو واجهتني مشكلة في التنفيذ؟",
				Answer:   "تواصل معانا على واتساب. هنساعدك توصل لحل لأي مشكلة تقنية تواجهك.",
			},
			{
				Question: "المنصة بتدعم عربي وإنجليزي؟",
				Answer:   "أيوا. المنصة بتدعم المحتوى العربي والإنجليزي . تقدر تضيف كورسات بأي لغة.",
			},
		},
	},
}
