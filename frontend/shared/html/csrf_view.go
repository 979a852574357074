package html

import "strconv"

// Names shared by the CSRF middleware and the form script.
const (
	CSRFCookieName = "effix-csrf"
	CSRFFieldName  = "_csrf"
)

// CSRFFormScript copies the CSRF cookie into a hidden field on every POST form.
func CSRFFormScript() string {
	return `<script>
(function () {
  var cookieName = ` + strconv.Quote(CSRFCookieName) + `;
  var fieldName = ` + strconv.Quote(CSRFFieldName) + `;

  function getCookie(name) {
    var prefix = name + "=";
    var parts = document.cookie ? document.cookie.split(";") : [];
    for (var i = 0; i < parts.length; i++) {
      var c = parts[i].trim();
      if (c.indexOf(prefix) === 0) return decodeURIComponent(c.substring(prefix.length));
    }
    return "";
  }

  function inject() {
    var token = getCookie(cookieName);
    if (!token) return;

    var forms = document.querySelectorAll("form");
    for (var i = 0; i < forms.length; i++) {
      var form = forms[i];
      var method = (form.getAttribute("method") || "GET").toUpperCase();
      if (method !== "POST") continue;
      if (form.querySelector("input[name='" + fieldName + "']")) continue;

      var input = document.createElement("input");
      input.type = "hidden";
      input.name = fieldName;
      input.value = token;
      form.appendChild(input);
    }
  }

  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", inject);
  } else {
    inject();
  }
})();
</script>`
}
