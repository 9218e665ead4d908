package booking

type Museum string

const (
	MuseumMain   Museum = "main"
	MuseumQinHan Museum = "qinhan"
)

func (m Museum) String() string {
	return string(m)
}

func (m Museum) IsValid() bool {
	switch m {
	case MuseumMain, MuseumQinHan:
		return true
	default:
		return false
	}
}

func (m Museum) DisplayName() string {
	switch m {
	case MuseumMain:
		return "陕西历史博物馆"
	case MuseumQinHan:
		return "陕西历史博物馆秦汉馆"
	default:
		return string(m)
	}
}

// ReferencePrefix is the leading code the platform uses on booking numbers for the site.
func (m Museum) ReferencePrefix() string {
	switch m {
	case MuseumQinHan:
		return "QH"
	default:
		return "SM"
	}
}

type IDType string

const (
	IDTypeIDCard   IDType = "id_card"
	IDTypePassport IDType = "passport"
	IDTypeOther    IDType = "other"
)

func (t IDType) String() string {
	return string(t)
}

func (t IDType) IsValid() bool {
	switch t {
	case IDTypeIDCard, IDTypePassport, IDTypeOther:
		return true
	default:
		return false
	}
}

// Provenance tags which strategy produced an AttemptResult.
type Provenance string

const (
	ProvenanceDirectAPI         Provenance = "direct_api"
	ProvenanceEnhancedAPI       Provenance = "enhanced_api"
	ProvenanceMobileApp         Provenance = "mobile_app"
	ProvenanceWeChatMiniProgram Provenance = "wechat_miniprogram"
	ProvenanceBrowser           Provenance = "browser_automation"
	ProvenanceManual            Provenance = "manual_fallback"
)

func (p Provenance) String() string {
	return string(p)
}

func (p Provenance) IsManual() bool {
	return p == ProvenanceManual
}
