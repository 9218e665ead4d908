package browser

import (
	"encoding/json"
	"fmt"
)

// fillScript sets the first matching element through the native value
// setter and fires input and change so framework bindings notice. Select
// elements match an option by value first, then by visible text, trying
// each candidate value in turn.
const fillScript = `(function(selectors, values) {
	for (const sel of selectors) {
		let el;
		try { el = document.querySelector(sel); } catch (e) { continue; }
		if (!el) continue;
		if (el.tagName === 'SELECT') {
			const opts = Array.from(el.options);
			let opt = null;
			for (const v of values) {
				opt = opts.find(o => o.value === v) || opts.find(o => o.text.trim() === v);
				if (opt) break;
			}
			if (!opt) continue;
			el.value = opt.value;
		} else {
			const proto = el.tagName === 'TEXTAREA' ? HTMLTextAreaElement.prototype : HTMLInputElement.prototype;
			const setter = Object.getOwnPropertyDescriptor(proto, 'value').set;
			setter.call(el, values[0]);
		}
		el.dispatchEvent(new Event('input', { bubbles: true }));
		el.dispatchEvent(new Event('change', { bubbles: true }));
		return sel;
	}
	return '';
})(%s, %s)`

const clickScript = `(function(selectors) {
	for (const sel of selectors) {
		let el;
		try { el = document.querySelector(sel); } catch (e) { continue; }
		if (!el || el.disabled) continue;
		el.click();
		return sel;
	}
	return '';
})(%s)`

// resultScript reports "error", "success" or "pending" plus whatever
// reference and confirmation code the page shows.
const resultScript = `(function(m) {
	const first = (sels) => {
		for (const sel of sels) {
			let el;
			try { el = document.querySelector(sel); } catch (e) { continue; }
			if (el) return el;
		}
		return null;
	};
	const value = (sels, attr) => {
		for (const sel of sels) {
			let el;
			try { el = document.querySelector(sel); } catch (e) { continue; }
			if (!el) continue;
			const v = (el.getAttribute(attr) || el.textContent || '').trim();
			if (v) return v;
		}
		return '';
	};
	const err = first(m.error);
	if (err) return { state: 'error', message: (err.textContent || '').trim() };
	const bookingId = value(m.bookingId, 'data-booking-id');
	const confirmationCode = value(m.confirmation, 'data-confirmation-code');
	if (first(m.success) || bookingId) {
		return { state: 'success', bookingId: bookingId, confirmationCode: confirmationCode };
	}
	return { state: 'pending' };
})(%s)`

const formPresentScript = `(function(selectors) {
	for (const sel of selectors) {
		try { if (document.querySelector(sel)) return true; } catch (e) {}
	}
	return false;
})(%s)`

// stealthScript masks the most common automation fingerprints. It is only
// installed when stealth is enabled in configuration.
const stealthScript = `(() => {
	Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
	Object.defineProperty(navigator, 'languages', { get: () => ['zh-CN', 'zh', 'en'] });
	Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3, 4, 5] });
	window.chrome = window.chrome || { runtime: {} };
	const query = window.navigator.permissions && window.navigator.permissions.query;
	if (query) {
		window.navigator.permissions.query = (p) =>
			p && p.name === 'notifications' ? Promise.resolve({ state: Notification.permission }) : query(p);
	}
})();`

type pageResult struct {
	State            string `json:"state"`
	BookingID        string `json:"bookingId"`
	ConfirmationCode string `json:"confirmationCode"`
	Message          string `json:"message"`
}

type resultMarkers struct {
	Success      []string `json:"success"`
	Error        []string `json:"error"`
	BookingID    []string `json:"bookingId"`
	Confirmation []string `json:"confirmation"`
}

func jsLiteral(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

func buildFillScript(selectors []string, values ...string) string {
	return fmt.Sprintf(fillScript, jsLiteral(selectors), jsLiteral(values))
}

func buildClickScript(selectors []string) string {
	return fmt.Sprintf(clickScript, jsLiteral(selectors))
}

func buildFormPresentScript(selectors []string) string {
	return fmt.Sprintf(formPresentScript, jsLiteral(selectors))
}

func buildResultScript(s Selectors) string {
	return fmt.Sprintf(resultScript, jsLiteral(resultMarkers{
		Success:      s.Result.Success,
		Error:        s.Result.Error,
		BookingID:    s.Result.BookingID,
		Confirmation: s.Result.Confirmation,
	}))
}
