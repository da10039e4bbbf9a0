package render

// radarCSS holds the interaction styling embedded in every document. The
// focus scale matches focusScale; keep the two in sync.
const radarCSS = `
    .blip { transition: transform 0.15s ease; transform-origin: center; transform-box: fill-box; cursor: pointer; outline: none; }
    .blip.focus { transform: scale(1.5); }
    .sector-button { cursor: pointer; outline: none; }
    .sector-list { display: none; }
    .sector-list.open { display: inline; }`

// radarJS drives focus/defocus highlighting and sidebar synchronization
// inside the rendered document. It only reads data attributes stamped onto
// the markers at render time; the Go side keeps no interactive state.
const radarJS = `
    var label = document.getElementById('blip-label');
    var labelText = document.getElementById('blip-label-text');
    var labelRect = document.getElementById('blip-label-rect');
    var desc = document.getElementById('blip-description');

    function focusBlip(el) {
      el.classList.add('focus');
      labelText.textContent = el.dataset.name;
      labelRect.setAttribute('fill', el.dataset.sectorColour);
      var w = labelText.getBBox().width;
      labelRect.setAttribute('width', w + 12);
      var x = parseFloat(el.dataset.cx), y = parseFloat(el.dataset.cy);
      label.setAttribute('transform', 'translate(' + (x + 14) + ' ' + (y - 14) + ')');
      label.setAttribute('visibility', 'visible');
      if (desc) desc.textContent = el.dataset.description;
      var item = document.getElementById(el.dataset.item);
      if (item) item.querySelector('.item-bg').setAttribute('fill', el.dataset.ringColour);
    }

    function defocusBlip(el) {
      el.classList.remove('focus');
      label.setAttribute('visibility', 'hidden');
      if (desc) desc.textContent = '';
      var item = document.getElementById(el.dataset.item);
      if (item) item.querySelector('.item-bg').setAttribute('fill', 'none');
    }

    document.querySelectorAll('.blip').forEach(function (el) {
      el.addEventListener('mouseenter', function () { focusBlip(el); });
      el.addEventListener('mouseleave', function () { defocusBlip(el); });
      el.addEventListener('focus', function () { focusBlip(el); });
      el.addEventListener('blur', function () { defocusBlip(el); });
    });

    document.querySelectorAll('.sector-button').forEach(function (btn) {
      btn.addEventListener('click', function () {
        document.querySelectorAll('.sector-list').forEach(function (l) { l.classList.remove('open'); });
        var list = document.getElementById(btn.dataset.list);
        if (list) list.classList.add('open');
      });
    });`
